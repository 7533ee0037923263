package testutil

import (
	"mailstub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(message *domain.MailMessage) error {
	args := m.Called(message)
	return args.Error(0)
}
