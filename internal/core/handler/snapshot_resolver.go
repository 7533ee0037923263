package handler

import (
	"strings"

	"mailstub/internal/core"
)

// resolveSnapshotPath treats arguments containing a path separator as file
// paths and everything else as a snapshot name below the configured directory.
func resolveSnapshotPath(configRepository core.ConfigRepository, argument string) (string, error) {
	if strings.ContainsAny(argument, "/\\") {
		return argument, nil
	}
	config, err := configRepository.LoadConfig()
	if err != nil {
		return "", err
	}
	return config.SnapshotPath(argument)
}
