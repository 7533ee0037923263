package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const snapshotExtension = ".yaml"

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the project settings read from .mailstub.yaml
type Config struct {
	SnapshotDir string `yaml:"snapshotDir"`
	LogLevel    string `yaml:"logLevel,omitempty"`
}

func CreateDefaultConfig() Config {
	return Config{
		SnapshotDir: filepath.Join("testdata", "mail"),
		LogLevel:    "info",
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SnapshotDir) == "" {
		return fmt.Errorf("snapshotDir must not be empty")
	}
	if strings.ContainsRune(c.SnapshotDir, 0) {
		return fmt.Errorf("snapshotDir contains a null byte")
	}
	if c.LogLevel != "" && !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf(
			"logLevel '%s' is invalid, expected one of %s",
			c.LogLevel,
			strings.Join(validLogLevels, ", "),
		)
	}
	return nil
}

// SnapshotPath resolves a snapshot name to a file below SnapshotDir.
func (c *Config) SnapshotPath(name string) (string, error) {
	if err := ValidateSnapshotName(name); err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, snapshotExtension) {
		name += snapshotExtension
	}
	return filepath.Join(c.SnapshotDir, name), nil
}

func ValidateSnapshotName(name string) error {
	if name == "" {
		return fmt.Errorf("snapshot name cannot be empty")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("snapshot name cannot contain '..'")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("snapshot name cannot contain path separators")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("snapshot name cannot contain null bytes")
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, valid := range validLogLevels {
		if strings.EqualFold(level, valid) {
			return true
		}
	}
	return false
}
