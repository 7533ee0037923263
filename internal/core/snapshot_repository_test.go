package core

import (
	"testing"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"
	"mailstub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemSnapshotRepository_SaveWritesYaml(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemSnapshotRepository(fileSystem)
	snapshot := &domain.Snapshot{
		Templates: []domain.RenderedTemplate{
			{Name: "welcome", Parameters: map[string]interface{}{"user": "alice"}},
		},
		Messages: []domain.MailMessage{*domain.NewPlaceholderMessage()},
	}

	require.NoError(t, sut.Save("testdata/mail/welcome.yaml", snapshot))

	content, err := fileSystem.ReadFile("testdata/mail/welcome.yaml")
	require.NoError(t, err)
	assert.Equal(
		t, `templates:
  - name: welcome
    parameters:
      user: alice
messages:
  - from: from@castle.org
    to: to@castle.org
    subject: subject
    body: body
`, string(content),
	)
}

func TestFileSystemSnapshotRepository_LoadReadsSavedSnapshot(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemSnapshotRepository(fileSystem)
	snapshot := &domain.Snapshot{
		Templates: []domain.RenderedTemplate{
			{Name: "notify", Parameters: map[string]interface{}{"count": 3, "user": "bob"}},
		},
	}
	require.NoError(t, sut.Save("notify.yaml", snapshot))

	loaded, err := sut.Load("notify.yaml")

	require.NoError(t, err)
	assert.Equal(t, "notify", loaded.Templates[0].Name)
	assert.Equal(t, 3, loaded.Templates[0].Parameters["count"])
	assert.Empty(t, loaded.Messages)
}

func TestFileSystemSnapshotRepository_LoadFailsForInvalidYaml(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("broken.yaml", []byte("templates: [\n"), ports.WorldReadable))
	sut := ProvideFileSystemSnapshotRepository(fileSystem)

	snapshot, err := sut.Load("broken.yaml")

	assert.Nil(t, snapshot)
	assert.ErrorContains(t, err, "failed to parse snapshot")
}

func TestFileSystemSnapshotRepository_Exists(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemSnapshotRepository(fileSystem)
	require.NoError(t, sut.Save("present.yaml", &domain.Snapshot{}))

	exists, err := sut.Exists("present.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.Exists("absent.yaml")
	require.NoError(t, err)
	assert.False(t, exists)
}
