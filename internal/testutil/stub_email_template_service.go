package testutil

import (
	"reflect"

	"mailstub/internal/adapters/dictionary"
	"mailstub/internal/core/domain"
	"mailstub/internal/ports"

	"go.uber.org/zap"
)

var _ ports.EmailTemplateService = (*StubEmailTemplateService)(nil)

// StubEmailTemplateService stands in for the real template service in tests.
// It knows every template, reports each render to its recorder and always
// returns the placeholder message.
type StubEmailTemplateService struct {
	recorder ports.MailTemplateRecorder
	adapter  ports.DictionaryAdapter
	logger   *zap.Logger
}

// StubOption configures a StubEmailTemplateService.
type StubOption func(*StubEmailTemplateService)

// WithDictionaryAdapter replaces the reflection adapter used by RenderMailMessageFromObject.
func WithDictionaryAdapter(adapter ports.DictionaryAdapter) StubOption {
	return func(s *StubEmailTemplateService) {
		if adapter != nil {
			s.adapter = adapter
		}
	}
}

// WithLogger sets the logger for adapter warnings. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) StubOption {
	return func(s *StubEmailTemplateService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStubEmailTemplateService returns a stub reporting every render to recorder.
func NewStubEmailTemplateService(recorder ports.MailTemplateRecorder, opts ...StubOption) *StubEmailTemplateService {
	s := &StubEmailTemplateService{
		recorder: recorder,
		adapter:  dictionary.ProvideReflectionAdapter(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasMailTemplate reports true for any name.
func (s *StubEmailTemplateService) HasMailTemplate(templateName string) bool {
	return true
}

func (s *StubEmailTemplateService) RenderMailMessage(
	templateName string,
	layoutName string,
	parameters map[string]interface{},
) (*domain.MailMessage, error) {
	s.recorder.AddMailTemplateRendered(templateName, parameters)

	return domain.NewPlaceholderMessage(), nil
}

func (s *StubEmailTemplateService) RenderMailMessageFromObject(
	templateName string,
	layoutName string,
	parameters interface{},
) (*domain.MailMessage, error) {
	values, err := s.adapter.ToMap(parameters)
	if err != nil {
		s.logger.Warn(
			"recording template without parameters",
			zap.String("template", templateName),
			zap.Error(err),
		)
		values = map[string]interface{}{}
	}
	s.recorder.AddMailTemplateRendered(templateName, values)

	return domain.NewPlaceholderMessage(), nil
}

func (s *StubEmailTemplateService) RenderControllerMailMessage(
	templateName string,
	engineContext ports.EngineContext,
	controller ports.Controller,
	controllerContext ports.ControllerContext,
	doNotApplyLayout bool,
) (*domain.MailMessage, error) {
	s.recorder.AddMailTemplateRendered(templateName, propertyBagOf(controllerContext))

	return domain.NewPlaceholderMessage(), nil
}

// propertyBagOf returns nil for nil and typed-nil contexts.
func propertyBagOf(controllerContext ports.ControllerContext) map[string]interface{} {
	if controllerContext == nil {
		return nil
	}
	v := reflect.ValueOf(controllerContext)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Func:
		if v.IsNil() {
			return nil
		}
	}
	return controllerContext.PropertyBag()
}
