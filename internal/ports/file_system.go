package ports

// AccessMode selects the permissions of files created through a FileSystem.
type AccessMode int

const (
	OwnerReadWrite AccessMode = iota
	OwnerReadWriteExecute
	WorldReadable
)

// FileSystem reads and writes snapshot and configuration files.
// Implementations expand a leading "~" to the user's home directory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
}
