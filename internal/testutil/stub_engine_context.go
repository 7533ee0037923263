package testutil

import (
	"sync"

	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"go.uber.org/zap"
)

var (
	_ ports.EngineContext        = (*StubEngineContext)(nil)
	_ ports.MailTemplateRecorder = (*StubEngineContext)(nil)
	_ ports.EmailMessageRecorder = (*StubEngineContext)(nil)
)

// StubEngineContext is the per-test recorder shared by the stub mail services.
// Create one per test and pass it to every stub that should report into it.
type StubEngineContext struct {
	mu                sync.Mutex
	logger            *zap.Logger
	requestPath       string
	renderedTemplates []domain.RenderedTemplate
	messagesSent      []domain.MailMessage
}

// EngineContextOption configures a StubEngineContext.
type EngineContextOption func(*StubEngineContext)

// WithRequestPath sets the path returned by RequestPath. Defaults to "/".
func WithRequestPath(path string) EngineContextOption {
	return func(c *StubEngineContext) {
		c.requestPath = path
	}
}

// WithEngineLogger sets the logger that records calls at debug level.
func WithEngineLogger(logger *zap.Logger) EngineContextOption {
	return func(c *StubEngineContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewStubEngineContext returns an empty recorder.
func NewStubEngineContext(opts ...EngineContextOption) *StubEngineContext {
	c := &StubEngineContext{
		logger:      zap.NewNop(),
		requestPath: "/",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *StubEngineContext) RequestPath() string {
	return c.requestPath
}

// AddMailTemplateRendered appends one render to the log.
func (c *StubEngineContext) AddMailTemplateRendered(templateName string, parameters map[string]interface{}) {
	c.mu.Lock()
	c.renderedTemplates = append(
		c.renderedTemplates, domain.RenderedTemplate{
			Name:       templateName,
			Parameters: parameters,
		},
	)
	count := len(c.renderedTemplates)
	c.mu.Unlock()

	c.logger.Debug(
		"mail template rendered",
		zap.String("template", templateName),
		zap.Int("parameters", len(parameters)),
		zap.Int("rendered", count),
	)
}

// RenderedEmailTemplates returns the recorded renders in call order.
func (c *StubEngineContext) RenderedEmailTemplates() []domain.RenderedTemplate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.RenderedTemplate(nil), c.renderedTemplates...)
}

func (c *StubEngineContext) AddEmailMessageSent(message *domain.MailMessage) {
	if message == nil {
		return
	}
	c.mu.Lock()
	c.messagesSent = append(c.messagesSent, *message)
	c.mu.Unlock()

	c.logger.Debug(
		"mail message sent",
		zap.String("to", message.To),
		zap.String("subject", message.Subject),
	)
}

func (c *StubEngineContext) MessagesSent() []domain.MailMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.MailMessage(nil), c.messagesSent...)
}

func (c *StubEngineContext) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Snapshot{
		Templates: append([]domain.RenderedTemplate(nil), c.renderedTemplates...),
		Messages:  append([]domain.MailMessage(nil), c.messagesSent...),
	}
}

// Reset forgets everything recorded so far.
func (c *StubEngineContext) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderedTemplates = nil
	c.messagesSent = nil
}
