package core

import (
	"errors"
	"fmt"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"gopkg.in/yaml.v3"
)

const ConfigFilePath = ".mailstub.yaml"

var ErrConfigExists = errors.New("configuration already exists")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileSystem ports.FileSystem
	path       string
	config     *domain.Config
}

func ProvideFileSystemConfigRepository(fileSystem ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileSystem: fileSystem,
		path:       ConfigFilePath,
	}
}

func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileSystem.FileExists(c.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s not found, run 'mailstub initialize' first", c.path)
	}

	data, err := c.fileSystem.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := domain.CreateDefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := c.fileSystem.WriteFile(c.path, data, ports.WorldReadable); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileSystem.FileExists(c.path)
}
