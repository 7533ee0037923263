package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mailstub/internal/ports"
)

var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem is a real file system rooted in a per-test temporary directory.
// Absolute paths and "~" are both mapped into the sandbox.
type TestFileSystem struct {
	baseDir string
}

func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Path returns the location of path inside the sandbox.
func (f *TestFileSystem) Path(path string) string {
	cleanPath := filepath.Clean(strings.TrimPrefix(path, "~"))
	cleanPath = strings.TrimPrefix(cleanPath, string(filepath.Separator))
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.Path(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.Path(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.Path(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.Path(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
