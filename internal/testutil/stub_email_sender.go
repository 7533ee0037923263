package testutil

import (
	"mailstub/internal/core/domain"
	"mailstub/internal/ports"
)

var _ ports.EmailSender = (*StubEmailSender)(nil)

// StubEmailSender delivers nothing; each message is handed to the recorder instead.
type StubEmailSender struct {
	recorder ports.EmailMessageRecorder
}

func NewStubEmailSender(recorder ports.EmailMessageRecorder) *StubEmailSender {
	return &StubEmailSender{recorder: recorder}
}

func (s *StubEmailSender) Send(message *domain.MailMessage) error {
	s.recorder.AddEmailMessageSent(message)
	return nil
}
