package core

import (
	"bytes"
	"fmt"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"gopkg.in/yaml.v3"
)

type SnapshotRepository interface {
	Load(path string) (*domain.Snapshot, error)
	Save(path string, snapshot *domain.Snapshot) error
	Exists(path string) (bool, error)
}

// FileSystemSnapshotRepository stores snapshots as YAML documents.
type FileSystemSnapshotRepository struct {
	fileSystem ports.FileSystem
}

func ProvideFileSystemSnapshotRepository(fileSystem ports.FileSystem) *FileSystemSnapshotRepository {
	return &FileSystemSnapshotRepository{fileSystem: fileSystem}
}

func (r *FileSystemSnapshotRepository) Load(path string) (*domain.Snapshot, error) {
	data, err := r.fileSystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snapshot domain.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

func (r *FileSystemSnapshotRepository) Save(path string, snapshot *domain.Snapshot) error {
	data, err := MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := r.fileSystem.WriteFile(path, data, ports.WorldReadable); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

func (r *FileSystemSnapshotRepository) Exists(path string) (bool, error) {
	return r.fileSystem.FileExists(path)
}

// MarshalSnapshot encodes a snapshot with two space indentation.
// Map keys are sorted by the encoder, so equal snapshots encode identically.
func MarshalSnapshot(snapshot *domain.Snapshot) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot); err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return buffer.Bytes(), nil
}
