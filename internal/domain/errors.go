package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyFileNotFound is returned by Load when no key file exists.
	ErrKeyFileNotFound = errors.New("key file not found")

	// ErrCryptographicFailure is returned when the protector rejects a stored
	// blob: wrong machine, tampered or corrupted bytes.
	ErrCryptographicFailure = errors.New("cryptographic failure")

	// ErrMalformedKeyRecord is returned when decrypted bytes are not a valid
	// key record.
	ErrMalformedKeyRecord = errors.New("malformed key record")
)

// KeyFileNotFoundError carries the resolved path of the missing key file.
type KeyFileNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *KeyFileNotFoundError) Error() string {
	return fmt.Sprintf("RSA key file not found: %s", e.Path)
}

// Is lets errors.Is match ErrKeyFileNotFound.
func (e *KeyFileNotFoundError) Is(target error) bool {
	return target == ErrKeyFileNotFound
}

// CryptoError tags err as a cryptographic failure while keeping the cause.
func CryptoError(err error) error {
	if err == nil || errors.Is(err, ErrCryptographicFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCryptographicFailure, err)
}

// MalformedError tags err as a malformed key record while keeping the cause.
func MalformedError(err error) error {
	if err == nil || errors.Is(err, ErrMalformedKeyRecord) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedKeyRecord, err)
}
