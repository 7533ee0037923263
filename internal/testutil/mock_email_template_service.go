package testutil

import (
	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.EmailTemplateService = (*MockEmailTemplateService)(nil)

// MockEmailTemplateService provides a testify mock for ports.EmailTemplateService
type MockEmailTemplateService struct {
	mock.Mock
}

func (m *MockEmailTemplateService) HasMailTemplate(templateName string) bool {
	args := m.Called(templateName)
	return args.Bool(0)
}

func (m *MockEmailTemplateService) RenderMailMessage(
	templateName string,
	layoutName string,
	parameters map[string]interface{},
) (*domain.MailMessage, error) {
	args := m.Called(templateName, layoutName, parameters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MailMessage), args.Error(1)
}

func (m *MockEmailTemplateService) RenderMailMessageFromObject(
	templateName string,
	layoutName string,
	parameters interface{},
) (*domain.MailMessage, error) {
	args := m.Called(templateName, layoutName, parameters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MailMessage), args.Error(1)
}

func (m *MockEmailTemplateService) RenderControllerMailMessage(
	templateName string,
	engineContext ports.EngineContext,
	controller ports.Controller,
	controllerContext ports.ControllerContext,
	doNotApplyLayout bool,
) (*domain.MailMessage, error) {
	args := m.Called(templateName, engineContext, controller, controllerContext, doNotApplyLayout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MailMessage), args.Error(1)
}
