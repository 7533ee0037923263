package domain

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefaultConfigReturnsValidConfig(t *testing.T) {
	defaultConfig := CreateDefaultConfig()

	assert.Equal(t, filepath.Join("testdata", "mail"), defaultConfig.SnapshotDir)
	assert.Nil(t, defaultConfig.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", CreateDefaultConfig(), false},
		{"no log level", Config{SnapshotDir: "snapshots"}, false},
		{"upper case log level", Config{SnapshotDir: "snapshots", LogLevel: "DEBUG"}, false},
		{"empty snapshot dir", Config{SnapshotDir: ""}, true},
		{"blank snapshot dir", Config{SnapshotDir: "   "}, true},
		{"null byte in snapshot dir", Config{SnapshotDir: "foo\x00bar"}, true},
		{"unknown log level", Config{SnapshotDir: "snapshots", LogLevel: "trace"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SnapshotPathAppendsExtension(t *testing.T) {
	config := Config{SnapshotDir: "snapshots"}
	name := uuid.NewString()

	path, err := config.SnapshotPath(name)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("snapshots", name+".yaml"), path)
}

func TestConfig_SnapshotPathKeepsExistingExtension(t *testing.T) {
	config := Config{SnapshotDir: "snapshots"}

	path, err := config.SnapshotPath("welcome.yaml")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("snapshots", "welcome.yaml"), path)
}

func TestValidateSnapshotName(t *testing.T) {
	tests := []struct {
		name         string
		snapshotName string
		wantErr      bool
	}{
		{"valid name", "welcome", false},
		{"valid name with dashes", "signup-flow-1", false},
		{"valid name with extension", "signup.yaml", false},
		{"path traversal with ..", "../etc", true},
		{"path traversal with forward slash", "foo/bar", true},
		{"path traversal with backslash", "foo\\bar", true},
		{"null byte injection", "foo\x00bar", true},
		{"double dot in middle", "foo..bar", true},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshotName(tt.snapshotName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
