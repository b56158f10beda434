// Package storage defines the vault file-system abstraction.
package storage

// Provider is the interface for vault file operations. Paths are relative to
// the vault root.
type Provider interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write replaces the content of the file at path, creating parent
	// directories as needed.
	Write(path string, content []byte) error
	// Create makes a new file at path holding content. It fails with an error
	// matching os.ErrExist when the file is already there.
	Create(path string, content []byte) error
}
