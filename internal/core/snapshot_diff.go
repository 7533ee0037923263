package core

import (
	"errors"
	"fmt"

	"mailstub/internal/core/domain"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

var ErrSnapshotsDiffer = errors.New("snapshots differ")

// NormalizeSnapshot round-trips a snapshot through YAML so values recorded in
// memory (structs, typed maps, int64...) compare equal to values read from disk.
func NormalizeSnapshot(snapshot *domain.Snapshot) (*domain.Snapshot, error) {
	data, err := MarshalSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	var normalized domain.Snapshot
	if err := yaml.Unmarshal(data, &normalized); err != nil {
		return nil, fmt.Errorf("failed to normalize snapshot: %w", err)
	}
	return &normalized, nil
}

// DiffSnapshots returns a unified diff between the YAML encodings of expected
// and actual, or an empty string if they are equal.
func DiffSnapshots(expected *domain.Snapshot, actual *domain.Snapshot) (string, error) {
	expectedText, err := normalizedText(expected)
	if err != nil {
		return "", err
	}
	actualText, err := normalizedText(actual)
	if err != nil {
		return "", err
	}
	if expectedText == actualText {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(
		difflib.UnifiedDiff{
			A:        difflib.SplitLines(expectedText),
			B:        difflib.SplitLines(actualText),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  3,
		},
	)
}

func normalizedText(snapshot *domain.Snapshot) (string, error) {
	if snapshot == nil {
		snapshot = &domain.Snapshot{}
	}
	normalized, err := NormalizeSnapshot(snapshot)
	if err != nil {
		return "", err
	}
	data, err := MarshalSnapshot(normalized)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
