package interfaces

// KeyFileStore is the byte-oriented store behind the single key file.
// It is bound to one path at construction.
type KeyFileStore interface {
	Path() string
	Exists() (bool, error)
	Read() ([]byte, error)
	// Write replaces the whole file.
	Write(b []byte) error
	// Remove deletes the file; a missing file is not an error.
	Remove() error
	// Hide marks the file as hidden from casual listings where the
	// platform supports it.
	Hide() error
}
