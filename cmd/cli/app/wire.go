//go:build wireinject
// +build wireinject

package app

import (
	"mailstub/internal/adapters/filesystem"
	"mailstub/internal/core"
	"mailstub/internal/core/handler"
	"mailstub/internal/logging"
	"mailstub/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	logging.ProvideLogger,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideFileSystemSnapshotRepository,
	wire.Bind(new(core.SnapshotRepository), new(*core.FileSystemSnapshotRepository)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectShowCommandHandler() (handler.ShowCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideShowCommandHandler,
	)
	return handler.ShowCommandHandler{}, nil
}

func InjectDiffCommandHandler() (handler.DiffCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDiffCommandHandler,
	)
	return handler.DiffCommandHandler{}, nil
}
