package ports

import "mailstub/internal/core/domain"

// EmailTemplateService renders named mail templates into messages.
type EmailTemplateService interface {
	// HasMailTemplate reports whether a template with the given name can be rendered.
	HasMailTemplate(templateName string) bool
	RenderMailMessage(
		templateName string,
		layoutName string,
		parameters map[string]interface{},
	) (*domain.MailMessage, error)
	// RenderMailMessageFromObject exposes the properties of parameters to the template.
	RenderMailMessageFromObject(
		templateName string,
		layoutName string,
		parameters interface{},
	) (*domain.MailMessage, error)
	// RenderControllerMailMessage renders using the property bag of the controller context.
	RenderControllerMailMessage(
		templateName string,
		engineContext EngineContext,
		controller Controller,
		controllerContext ControllerContext,
		doNotApplyLayout bool,
	) (*domain.MailMessage, error)
}
