package ports

import "mailstub/internal/core/domain"

type EmailSender interface {
	Send(message *domain.MailMessage) error
}
