// Package golden compares everything a StubEngineContext recorded against a
// snapshot file kept next to the tests.
package golden

import (
	"os"
	"strconv"

	"mailstub/internal/adapters/filesystem"
	"mailstub/internal/core"
	"mailstub/internal/testutil"

	"github.com/stretchr/testify/assert"
)

// UpdateEnv rewrites snapshots instead of comparing them when set to a true value.
const UpdateEnv = "MAILSTUB_UPDATE_SNAPSHOTS"

type tHelper interface {
	Helper()
}

func updateRequested() bool {
	update, err := strconv.ParseBool(os.Getenv(UpdateEnv))
	return err == nil && update
}

// AssertMatchesSnapshot fails t when the recordings of ctx differ from the
// snapshot stored at path.
func AssertMatchesSnapshot(t assert.TestingT, ctx *testutil.StubEngineContext, path string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	repository := core.ProvideFileSystemSnapshotRepository(filesystem.ProvideOsFileSystem())
	actual := ctx.Snapshot()

	if updateRequested() {
		if err := repository.Save(path, &actual); err != nil {
			return assert.Fail(t, "could not update snapshot", err.Error())
		}
		return true
	}

	exists, err := repository.Exists(path)
	if err != nil {
		return assert.Fail(t, "could not check snapshot", err.Error())
	}
	if !exists {
		return assert.Fail(
			t,
			"snapshot "+path+" does not exist",
			"run the tests with "+UpdateEnv+"=1 to create it",
		)
	}

	expected, err := repository.Load(path)
	if err != nil {
		return assert.Fail(t, "could not load snapshot", err.Error())
	}
	diff, err := core.DiffSnapshots(expected, &actual)
	if err != nil {
		return assert.Fail(t, "could not compare snapshot", err.Error())
	}
	if diff != "" {
		return assert.Fail(t, "recorded mail does not match snapshot "+path, diff)
	}
	return true
}
