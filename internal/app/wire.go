package app

import (
	"errors"

	"agentkey/internal/crypto"
	"agentkey/internal/domain"
	"agentkey/internal/protect"
	"agentkey/internal/services/keypair"
	"agentkey/internal/store"
)

var errNoKeyFile = errors.New("key file path required")

// Wire bundles the store, protector and key manager for the CLI.
type Wire struct {
	KeyFile   domain.KeyFileStore
	Protector domain.Protector
	Keys      domain.KeyManager
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.KeyFile == "" {
		return nil, errNoKeyFile
	}

	protector, err := protect.NewMachineScope(protect.Options{
		SecretFile:    cfg.MachineSecretFile,
		MachineIDFile: cfg.MachineIDFile,
	})
	if err != nil {
		return nil, err
	}
	return newWire(cfg, protector), nil
}

func newWire(cfg Config, protector domain.Protector) *Wire {
	keyFile := store.NewKeyFile(cfg.KeyFile)
	return &Wire{
		KeyFile:   keyFile,
		Protector: protector,
		Keys:      keypair.New(keyFile, protector, crypto.RSAGenerator{}, cfg.Logger),
	}
}
