//go:build darwin

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"agentkey/internal/store"
)

func TestKeyFile_HideSetsHiddenFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	kf := store.NewKeyFile(path)
	require.NoError(t, kf.Write([]byte("blob")))

	var st unix.Stat_t
	require.NoError(t, unix.Stat(path, &st))
	require.Zero(t, st.Flags&unix.UF_HIDDEN)

	require.NoError(t, kf.Hide())

	require.NoError(t, unix.Stat(path, &st))
	require.NotZero(t, st.Flags&unix.UF_HIDDEN)
}
