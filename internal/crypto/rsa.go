package crypto

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	"agentkey/internal/domain"
)

// KeyBits is the modulus size of every generated key.
const KeyBits = 2048

var (
	errMissingPublic  = errors.New("modulus or exponent missing")
	errMissingPrivate = errors.New("private factors missing")
	errExponentRange  = errors.New("public exponent out of range")
	errCRTMismatch    = errors.New("CRT parameters do not match primes")
)

// RSAGenerator implements domain.KeyGenerator with fixed-strength keys.
type RSAGenerator struct{}

// GenerateKeyPair returns a new KeyBits RSA key.
func (RSAGenerator) GenerateKeyPair() (*rsa.PrivateKey, error) { return GenerateRSA() }

// GenerateRSA returns a new KeyBits RSA key with precomputed CRT values.
func GenerateRSA() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return key, nil
}

// MaterialFromKey exports the full parameters of a two-prime RSA key.
func MaterialFromKey(key *rsa.PrivateKey) (domain.KeyMaterial, error) {
	if len(key.Primes) != 2 {
		return domain.KeyMaterial{}, fmt.Errorf("unsupported prime count %d", len(key.Primes))
	}
	key.Precompute()
	return domain.KeyMaterial{
		Modulus:  key.N.Bytes(),
		Exponent: big.NewInt(int64(key.E)).Bytes(),
		P:        key.Primes[0].Bytes(),
		Q:        key.Primes[1].Bytes(),
		D:        key.D.Bytes(),
		DP:       key.Precomputed.Dp.Bytes(),
		DQ:       key.Precomputed.Dq.Bytes(),
		InverseQ: key.Precomputed.Qinv.Bytes(),
	}, nil
}

// KeyFromMaterial rebuilds a private key from full material. The key is
// validated and its CRT values must equal the stored ones.
func KeyFromMaterial(m domain.KeyMaterial) (*rsa.PrivateKey, error) {
	if len(m.Modulus) == 0 || len(m.Exponent) == 0 {
		return nil, errMissingPublic
	}
	if !m.HasPrivate() {
		return nil, errMissingPrivate
	}
	e := new(big.Int).SetBytes(m.Exponent)
	if !e.IsInt64() || e.Int64() < 3 || e.Int64() > 1<<31-1 {
		return nil, errExponentRange
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(m.Modulus),
			E: int(e.Int64()),
		},
		D: new(big.Int).SetBytes(m.D),
		Primes: []*big.Int{
			new(big.Int).SetBytes(m.P),
			new(big.Int).SetBytes(m.Q),
		},
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	key.Precompute()

	if !bytes.Equal(key.Precomputed.Dp.Bytes(), trim(m.DP)) ||
		!bytes.Equal(key.Precomputed.Dq.Bytes(), trim(m.DQ)) ||
		!bytes.Equal(key.Precomputed.Qinv.Bytes(), trim(m.InverseQ)) {
		return nil, errCRTMismatch
	}
	return key, nil
}

// trim drops leading zero bytes so padded encodings compare equal.
func trim(b []byte) []byte {
	return new(big.Int).SetBytes(b).Bytes()
}
