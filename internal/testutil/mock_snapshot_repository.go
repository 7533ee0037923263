package testutil

import (
	"mailstub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Load(path string) (*domain.Snapshot, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Save(path string, snapshot *domain.Snapshot) error {
	args := m.Called(path, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}
