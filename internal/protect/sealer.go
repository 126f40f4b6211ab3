package protect

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"agentkey/internal/crypto"
	"agentkey/internal/domain"
)

const (
	// The current sealed blob layout: version | salt | nonce | ciphertext.
	sealFormatVersion = 1

	saltBytes   = 16
	headerBytes = 1 + saltBytes
	// SecretBytes is the required size of a machine secret.
	SecretBytes = 32

	kdfLabel = "agentkey|machine-scope|v1|"
)

var (
	errShortBlob      = errors.New("sealed blob too short")
	errUnknownVersion = errors.New("unsupported sealed blob version")
	errOpen           = errors.New("sealed blob rejected")
	errSecretSize     = fmt.Errorf("machine secret must be %d bytes", SecretBytes)
)

// Sealer is a portable machine-scoped Protector. A blob sealed with one
// (secret, scope) pair only opens under the same pair.
type Sealer struct {
	secret []byte
	scope  []byte
}

// NewSealer returns a Sealer for the given machine secret and scope label.
func NewSealer(secret, scope []byte) (*Sealer, error) {
	if len(secret) != SecretBytes {
		return nil, errSecretSize
	}
	return &Sealer{
		secret: append([]byte(nil), secret...),
		scope:  append([]byte(nil), scope...),
	}, nil
}

// Scheme names the backing mechanism.
func (s *Sealer) Scheme() string { return "machine-secret xchacha20poly1305" }

// Protect seals plaintext under a fresh salt and nonce.
func (s *Sealer) Protect(plaintext []byte) ([]byte, error) {
	header := make([]byte, headerBytes, headerBytes+chacha20poly1305.NonceSizeX+len(plaintext)+chacha20poly1305.Overhead)
	header[0] = sealFormatVersion
	if _, err := rand.Read(header[1:]); err != nil {
		return nil, err
	}
	aead, err := s.aead(header[1:])
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	out := append(header, nonce...)
	return aead.Seal(out, nonce, plaintext, header), nil
}

// Unprotect opens a blob produced by Protect under the same secret and scope.
func (s *Sealer) Unprotect(blob []byte) ([]byte, error) {
	if len(blob) < headerBytes+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, domain.CryptoError(errShortBlob)
	}
	if blob[0] != sealFormatVersion {
		return nil, domain.CryptoError(fmt.Errorf("%w %d", errUnknownVersion, blob[0]))
	}
	header := blob[:headerBytes]
	nonce := blob[headerBytes : headerBytes+chacha20poly1305.NonceSizeX]
	ct := blob[headerBytes+chacha20poly1305.NonceSizeX:]

	aead, err := s.aead(header[1:])
	if err != nil {
		return nil, domain.CryptoError(err)
	}
	pt, err := aead.Open(nil, nonce, ct, header)
	if err != nil {
		return nil, domain.CryptoError(errOpen)
	}
	return pt, nil
}

func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	info := append([]byte(kdfLabel), s.scope...)
	key := make([]byte, chacha20poly1305.KeySize)
	defer crypto.Wipe(key)

	r := hkdf.New(sha256.New, s.secret, salt, info)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

// Compile-time assertion that Sealer implements domain.Protector.
var _ domain.Protector = (*Sealer)(nil)
