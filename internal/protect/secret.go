package protect

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// The secret is readable by its owner (normally root) and the owning group.
// Granting a service account that group is what makes it "authorised".
const (
	secretFileMode = 0o640
	secretDirMode  = 0o750
)

var errNoSecretFile = errors.New("machine secret file not configured")

// LoadOrCreateSecret returns the machine secret at path, creating it with
// fresh random bytes when it does not exist yet.
func LoadOrCreateSecret(path string) ([]byte, error) {
	if path == "" {
		return nil, errNoSecretFile
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(b) != SecretBytes {
			return nil, fmt.Errorf("machine secret %s: %w", path, errSecretSize)
		}
		return b, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), secretDirMode); err != nil {
		return nil, err
	}
	secret := make([]byte, SecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, secretFileMode)
	if errors.Is(err, os.ErrExist) {
		// Lost a creation race; use the winner's secret.
		return LoadOrCreateSecret(path)
	}
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, bytes.NewReader(secret)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	// Undo the umask so group members can read the secret.
	if err := f.Chmod(secretFileMode); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return secret, nil
}

// MachineID returns the identifier that scopes sealed blobs to this host.
func MachineID(override string) ([]byte, error) {
	if override != "" {
		return readID(override)
	}
	for _, path := range defaultMachineIDFiles {
		id, err := readID(path)
		if err == nil && len(id) > 0 {
			return id, nil
		}
	}
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve machine id: %w", err)
	}
	return []byte(host), nil
}

func readID(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(b), nil
}
