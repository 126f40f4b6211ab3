package app

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	keyFileName       = ".credentials_rsaparams"
	machineSecretName = "machine.key"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	KeyFile           string // encrypted key file, e.g. $HOME/.agentkey/.credentials_rsaparams
	MachineSecretFile string // machine-wide secret for non-Windows protection
	MachineIDFile     string // optional machine id override
	Logger            logrus.FieldLogger
}

// DefaultHome returns the directory holding agentkey state.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".agentkey"), nil
}

// DefaultKeyFile returns the key file path under home.
func DefaultKeyFile(home string) string { return filepath.Join(home, keyFileName) }

// DefaultMachineSecretFile returns the machine-wide secret path. It never
// depends on the calling user, so every account on the host resolves the
// same secret.
func DefaultMachineSecretFile() string {
	return filepath.Join(machineStateDir(), machineSecretName)
}
