package handler

import (
	"io"
	"strings"

	"mailstub/internal/cli/output"
	"mailstub/internal/core"

	"go.uber.org/zap"
)

type DiffCommandHandler struct {
	configRepository   core.ConfigRepository
	snapshotRepository core.SnapshotRepository
	logger             *zap.Logger
}

func ProvideDiffCommandHandler(
	configRepository core.ConfigRepository,
	snapshotRepository core.SnapshotRepository,
	logger *zap.Logger,
) DiffCommandHandler {
	return DiffCommandHandler{
		configRepository:   configRepository,
		snapshotRepository: snapshotRepository,
		logger:             logger,
	}
}

// Handle prints the differences between two snapshots and returns
// core.ErrSnapshotsDiffer when there are any.
func (h *DiffCommandHandler) Handle(out io.Writer, expectedName string, actualName string) error {
	expectedPath, err := resolveSnapshotPath(h.configRepository, expectedName)
	if err != nil {
		return err
	}
	actualPath, err := resolveSnapshotPath(h.configRepository, actualName)
	if err != nil {
		return err
	}
	h.logger.Debug(
		"comparing snapshots",
		zap.String("expected", expectedPath),
		zap.String("actual", actualPath),
	)

	expected, err := h.snapshotRepository.Load(expectedPath)
	if err != nil {
		return err
	}
	actual, err := h.snapshotRepository.Load(actualPath)
	if err != nil {
		return err
	}

	diff, err := core.DiffSnapshots(expected, actual)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(out)
	if diff == "" {
		printer.Success("snapshots are identical")
		return nil
	}
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		printer.DiffLine(line)
	}
	printer.Failure("snapshots differ")
	return core.ErrSnapshotsDiffer
}
