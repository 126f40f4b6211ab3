//go:build darwin

package store

import "golang.org/x/sys/unix"

func hide(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return err
	}
	return unix.Chflags(path, int(st.Flags|unix.UF_HIDDEN))
}
