package interfaces

import "crypto/rsa"

// Protector encrypts and decrypts small blobs under a machine-scoped key.
// Data protected on one machine must be recoverable by any authorised process
// on that machine and by nothing else. Unprotect must fail rather than return
// altered plaintext.
type Protector interface {
	Protect(plaintext []byte) ([]byte, error)
	Unprotect(blob []byte) ([]byte, error)
	// Scheme names the backing mechanism for display.
	Scheme() string
}

// KeyGenerator produces fresh RSA key pairs.
type KeyGenerator interface {
	GenerateKeyPair() (*rsa.PrivateKey, error)
}
