package interfaces

import domaintypes "agentkey/internal/domain/types"

// KeyManager creates, loads and destroys the host key pair.
type KeyManager interface {
	// CreateOrLoad returns the persisted key pair, generating and persisting
	// a new one only when no key file exists.
	CreateOrLoad() (domaintypes.KeyPair, error)
	// Load returns the persisted key pair and fails if none exists.
	Load() (domaintypes.KeyPair, error)
	// Delete removes the key file if present.
	Delete() error
}
