//go:build !windows && !darwin

package store

// hide is a no-op: there is no hidden attribute, only dot-file naming.
func hide(string) error { return nil }
