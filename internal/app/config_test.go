package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"agentkey/internal/app"
)

func TestDefaultMachineSecretFile_IgnoresUserHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "alice"))
	alice := app.DefaultMachineSecretFile()
	aliceHome, err := app.DefaultHome()
	require.NoError(t, err)

	t.Setenv("HOME", filepath.Join(t.TempDir(), "bob"))
	bob := app.DefaultMachineSecretFile()

	require.Equal(t, alice, bob)
	require.True(t, filepath.IsAbs(alice))
	require.NotContains(t, alice, aliceHome)
	require.NotEqual(t, filepath.Dir(app.DefaultKeyFile(aliceHome)), filepath.Dir(alice))
}
