package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mailstub/internal/ports"
)

var _ ports.FileSystem = (*OsFileSystem)(nil)

const dirMode os.FileMode = 0755

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	resolved, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(resolved)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	resolved, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := f.EnsureDirExists(resolved); err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(resolved, content, fileModeFor(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// EnsureDirExists creates the parent directory of path.
func (f *OsFileSystem) EnsureDirExists(path string) error {
	resolved, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	resolved, err := expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(resolved)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func fileModeFor(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.OwnerReadWrite:
		return 0600
	case ports.OwnerReadWriteExecute:
		return 0700
	case ports.WorldReadable:
		return 0644
	default:
		return 0600
	}
}
