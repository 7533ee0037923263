package ports

import "mailstub/internal/core/domain"

// MailTemplateRecorder receives every template render made through a stub service.
type MailTemplateRecorder interface {
	AddMailTemplateRendered(templateName string, parameters map[string]interface{})
}

// EmailMessageRecorder receives every message handed to a stub sender.
type EmailMessageRecorder interface {
	AddEmailMessageSent(message *domain.MailMessage)
}
