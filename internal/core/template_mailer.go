package core

import (
	"errors"
	"fmt"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"go.uber.org/zap"
)

var ErrTemplateNotFound = errors.New("mail template not found")

// TemplateMailer renders a mail template and hands the result to a sender.
type TemplateMailer struct {
	templates ports.EmailTemplateService
	sender    ports.EmailSender
	logger    *zap.Logger
}

func ProvideTemplateMailer(
	templates ports.EmailTemplateService,
	sender ports.EmailSender,
	logger *zap.Logger,
) TemplateMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return TemplateMailer{
		templates: templates,
		sender:    sender,
		logger:    logger,
	}
}

func (m *TemplateMailer) Deliver(templateName string, layoutName string, parameters map[string]interface{}) error {
	if !m.templates.HasMailTemplate(templateName) {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}
	message, err := m.templates.RenderMailMessage(templateName, layoutName, parameters)
	if err != nil {
		return fmt.Errorf("failed to render mail template %s: %w", templateName, err)
	}
	return m.send(templateName, message)
}

func (m *TemplateMailer) DeliverObject(templateName string, layoutName string, parameters interface{}) error {
	if !m.templates.HasMailTemplate(templateName) {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}
	message, err := m.templates.RenderMailMessageFromObject(templateName, layoutName, parameters)
	if err != nil {
		return fmt.Errorf("failed to render mail template %s: %w", templateName, err)
	}
	return m.send(templateName, message)
}

func (m *TemplateMailer) send(templateName string, message *domain.MailMessage) error {
	if err := m.sender.Send(message); err != nil {
		return fmt.Errorf("failed to send mail rendered from %s: %w", templateName, err)
	}
	m.logger.Info(
		"mail delivered",
		zap.String("template", templateName),
		zap.String("to", message.To),
	)
	return nil
}
