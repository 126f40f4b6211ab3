package types

import (
	"bytes"
	"crypto/rsa"
	"math/big"
)

// KeyMaterial holds the numeric parameters of an RSA key pair. Every field is
// an unsigned big-endian integer. Modulus and Exponent make up the public half;
// the remaining fields are present only for full (private) material.
type KeyMaterial struct {
	Modulus  []byte
	Exponent []byte

	P        []byte
	Q        []byte
	D        []byte
	DP       []byte
	DQ       []byte
	InverseQ []byte
}

// HasPrivate reports whether all private factors are present.
func (m KeyMaterial) HasPrivate() bool {
	return len(m.P) > 0 && len(m.Q) > 0 && len(m.D) > 0 &&
		len(m.DP) > 0 && len(m.DQ) > 0 && len(m.InverseQ) > 0
}

// BitLen returns the size of the modulus in bits.
func (m KeyMaterial) BitLen() int {
	return new(big.Int).SetBytes(m.Modulus).BitLen()
}

// Public returns a copy of m without the private factors.
func (m KeyMaterial) Public() KeyMaterial {
	return KeyMaterial{
		Modulus:  bytes.Clone(m.Modulus),
		Exponent: bytes.Clone(m.Exponent),
	}
}

// Equal reports whether every field of m and o holds the same bytes.
func (m KeyMaterial) Equal(o KeyMaterial) bool {
	return bytes.Equal(m.Modulus, o.Modulus) &&
		bytes.Equal(m.Exponent, o.Exponent) &&
		bytes.Equal(m.P, o.P) &&
		bytes.Equal(m.Q, o.Q) &&
		bytes.Equal(m.D, o.D) &&
		bytes.Equal(m.DP, o.DP) &&
		bytes.Equal(m.DQ, o.DQ) &&
		bytes.Equal(m.InverseQ, o.InverseQ)
}

// KeyPair is the usable handle returned by the key manager. Key is always a
// full private key, so it supports both public and private operations.
type KeyPair struct {
	Material KeyMaterial
	Key      *rsa.PrivateKey
}

// Public returns the public half of the pair.
func (kp KeyPair) Public() *rsa.PublicKey { return &kp.Key.PublicKey }
