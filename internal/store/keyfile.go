package store

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"agentkey/internal/domain"
)

// Group-readable like the machine secret: the blob is opaque without it.
const keyFileMode = 0o640

// KeyFile persists the encrypted key blob at a single path.
type KeyFile struct {
	path string
	mu   sync.Mutex
}

// NewKeyFile returns a KeyFile bound to path.
func NewKeyFile(path string) *KeyFile {
	return &KeyFile{path: path}
}

// Path returns the bound path.
func (s *KeyFile) Path() string { return s.path }

// Exists reports whether the key file is present. Errors other than
// "not found" are returned as-is.
func (s *KeyFile) Exists() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Read returns the raw file contents.
func (s *KeyFile) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.ReadFile(s.path)
}

// Write replaces the file contents atomically.
func (s *KeyFile) Write(b []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path, b, keyFileMode)
}

// Remove deletes the file; a missing file is not an error.
func (s *KeyFile) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Hide sets the platform "hidden" attribute on the file, if there is one.
func (s *KeyFile) Hide() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hide(s.path)
}

// Compile-time assertion that KeyFile implements domain.KeyFileStore.
var _ domain.KeyFileStore = (*KeyFile)(nil)
