package domain

const (
	PlaceholderFrom    = "from@castle.org"
	PlaceholderTo      = "to@castle.org"
	PlaceholderSubject = "subject"
	PlaceholderBody    = "body"
)

// MailMessage is a rendered email ready to be handed to a sender.
type MailMessage struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

func NewMailMessage(from string, to string, subject string, body string) *MailMessage {
	return &MailMessage{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
	}
}

// NewPlaceholderMessage returns the fixed message produced by stub renderers.
// Every call returns a new value.
func NewPlaceholderMessage() *MailMessage {
	return NewMailMessage(PlaceholderFrom, PlaceholderTo, PlaceholderSubject, PlaceholderBody)
}
