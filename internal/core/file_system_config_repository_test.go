package core

import (
	"errors"
	"testing"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"
	"mailstub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileSystemConfigRepository_SaveThenLoadRoundTrips(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemConfigRepository(fileSystem)
	config := domain.Config{SnapshotDir: "snapshots", LogLevel: "debug"}

	require.NoError(t, sut.SaveConfig(&config))
	loaded, err := ProvideFileSystemConfigRepository(fileSystem).LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config, *loaded)
}

func TestFileSystemConfigRepository_LoadConfigAppliesDefaults(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile(ConfigFilePath, []byte("snapshotDir: golden\n"), ports.WorldReadable))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "golden", config.SnapshotDir)
	assert.Equal(t, "info", config.LogLevel)
}

func TestFileSystemConfigRepository_LoadConfigCachesResult(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", ConfigFilePath).Return(true, nil).Once()
	fileSystem.On("ReadFile", ConfigFilePath).Return([]byte("snapshotDir: golden\n"), nil).Once()
	sut := ProvideFileSystemConfigRepository(fileSystem)

	first, err := sut.LoadConfig()
	require.NoError(t, err)
	second, err := sut.LoadConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	fileSystem.AssertExpectations(t)
}

func TestFileSystemConfigRepository_LoadConfigFailsWhenMissing(t *testing.T) {
	sut := ProvideFileSystemConfigRepository(testutil.NewTestFileSystem(t))

	config, err := sut.LoadConfig()

	assert.Nil(t, config)
	assert.ErrorContains(t, err, "mailstub initialize")
}

func TestFileSystemConfigRepository_LoadConfigRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "snapshotDir: [unterminated\n"},
		{"empty snapshot dir", "snapshotDir: \"\"\n"},
		{"unknown log level", "snapshotDir: mail\nlogLevel: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileSystem := testutil.NewTestFileSystem(t)
			require.NoError(t, fileSystem.WriteFile(ConfigFilePath, []byte(tt.content), ports.WorldReadable))
			sut := ProvideFileSystemConfigRepository(fileSystem)

			config, err := sut.LoadConfig()

			assert.Nil(t, config)
			assert.Error(t, err)
		})
	}
}

func TestFileSystemConfigRepository_SaveConfigRejectsInvalidConfig(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	sut := ProvideFileSystemConfigRepository(fileSystem)

	err := sut.SaveConfig(&domain.Config{})

	assert.Error(t, err)
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileSystemConfigRepository_SaveConfigWritesWorldReadableFile(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("WriteFile", ConfigFilePath, mock.Anything, ports.WorldReadable).Return(nil)
	sut := ProvideFileSystemConfigRepository(fileSystem)
	config := domain.CreateDefaultConfig()

	err := sut.SaveConfig(&config)

	assert.NoError(t, err)
	fileSystem.AssertExpectations(t)
}

func TestFileSystemConfigRepository_ConfigExistsPropagatesErrors(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", ConfigFilePath).Return(false, errors.New("permission denied"))
	sut := ProvideFileSystemConfigRepository(fileSystem)

	exists, err := sut.ConfigExists()

	assert.False(t, exists)
	assert.Error(t, err)
}
