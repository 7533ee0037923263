package testutil

import (
	"fmt"
	"strings"

	"mailstub/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

// AssertMailTemplateRendered checks that templateName was rendered at least once
// with exactly the given parameters.
func AssertMailTemplateRendered(
	t assert.TestingT,
	context *StubEngineContext,
	templateName string,
	parameters map[string]interface{},
) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	snapshot := context.Snapshot()
	matches := snapshot.FindTemplates(templateName)
	if len(matches) == 0 {
		return assert.Fail(
			t,
			fmt.Sprintf("mail template '%s' was not rendered", templateName),
			"rendered templates: %s",
			describeTemplates(snapshot.Templates),
		)
	}
	for _, match := range matches {
		if assert.ObjectsAreEqual(parameters, match.Parameters) {
			return true
		}
	}
	return assert.Fail(
		t,
		fmt.Sprintf("mail template '%s' was not rendered with the expected parameters", templateName),
		"expected: %v\nrecorded: %v",
		parameters,
		parametersOf(matches),
	)
}

func AssertMailTemplateNotRendered(t assert.TestingT, context *StubEngineContext, templateName string) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	snapshot := context.Snapshot()
	matches := snapshot.FindTemplates(templateName)
	return assert.Empty(
		t,
		matches,
		fmt.Sprintf("mail template '%s' was rendered %d times", templateName, len(matches)),
	)
}

func AssertRenderedCount(t assert.TestingT, context *StubEngineContext, expected int) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.Len(t, context.RenderedEmailTemplates(), expected)
}

// AssertMessageSent checks that a message with the given recipient and subject was sent.
func AssertMessageSent(t assert.TestingT, context *StubEngineContext, to string, subject string) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	messages := context.MessagesSent()
	for _, message := range messages {
		if message.To == to && message.Subject == subject {
			return true
		}
	}
	return assert.Fail(
		t,
		fmt.Sprintf("no message to '%s' with subject '%s' was sent", to, subject),
		"sent messages: %v",
		messages,
	)
}

func describeTemplates(templates []domain.RenderedTemplate) string {
	if len(templates) == 0 {
		return "none"
	}
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, template.Name)
	}
	return strings.Join(names, ", ")
}

func parametersOf(templates []domain.RenderedTemplate) []map[string]interface{} {
	parameters := make([]map[string]interface{}, 0, len(templates))
	for _, template := range templates {
		parameters = append(parameters, template.Parameters)
	}
	return parameters
}
