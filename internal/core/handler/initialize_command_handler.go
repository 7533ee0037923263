package handler

import (
	"fmt"

	"mailstub/internal/core"
	"mailstub/internal/core/domain"

	"go.uber.org/zap"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
	logger           *zap.Logger
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
	logger *zap.Logger,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
		logger:           logger,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("%w: %s", core.ErrConfigExists, core.ConfigFilePath)
	}
	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}
	h.logger.Info(
		"configuration written",
		zap.String("path", core.ConfigFilePath),
		zap.String("snapshotDir", config.SnapshotDir),
	)

	return nil
}
