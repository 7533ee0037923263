package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestAssertMailTemplateRendered_PassesOnMatchingCall(t *testing.T) {
	context := NewStubEngineContext()
	context.AddMailTemplateRendered("welcome", map[string]interface{}{"user": "bob"})
	context.AddMailTemplateRendered("welcome", map[string]interface{}{"user": "alice"})
	recorder := &recordingT{}

	result := AssertMailTemplateRendered(recorder, context, "welcome", map[string]interface{}{"user": "alice"})

	assert.True(t, result)
	assert.Empty(t, recorder.errors)
}

func TestAssertMailTemplateRendered_FailsWhenTemplateMissing(t *testing.T) {
	context := NewStubEngineContext()
	context.AddMailTemplateRendered("reset", nil)
	recorder := &recordingT{}

	result := AssertMailTemplateRendered(recorder, context, "welcome", nil)

	assert.False(t, result)
	assert.Len(t, recorder.errors, 1)
	assert.Contains(t, recorder.errors[0], "mail template 'welcome' was not rendered")
	assert.Contains(t, recorder.errors[0], "reset")
}

func TestAssertMailTemplateRendered_FailsOnDifferentParameters(t *testing.T) {
	context := NewStubEngineContext()
	context.AddMailTemplateRendered("welcome", map[string]interface{}{"user": "bob"})
	recorder := &recordingT{}

	result := AssertMailTemplateRendered(recorder, context, "welcome", map[string]interface{}{"user": "alice"})

	assert.False(t, result)
	assert.Len(t, recorder.errors, 1)
	assert.Contains(t, recorder.errors[0], "expected parameters")
}

func TestAssertMailTemplateNotRendered(t *testing.T) {
	context := NewStubEngineContext()
	context.AddMailTemplateRendered("welcome", nil)
	recorder := &recordingT{}

	assert.True(t, AssertMailTemplateNotRendered(recorder, context, "reset"))
	assert.False(t, AssertMailTemplateNotRendered(recorder, context, "welcome"))
	assert.Len(t, recorder.errors, 1)
}

func TestAssertRenderedCount(t *testing.T) {
	context := NewStubEngineContext()
	context.AddMailTemplateRendered("welcome", nil)
	recorder := &recordingT{}

	assert.True(t, AssertRenderedCount(recorder, context, 1))
	assert.False(t, AssertRenderedCount(recorder, context, 2))
}

func TestAssertMessageSent_FailsWhenNothingMatches(t *testing.T) {
	context := NewStubEngineContext()
	recorder := &recordingT{}

	result := AssertMessageSent(recorder, context, "to@example.com", "hello")

	assert.False(t, result)
	assert.Len(t, recorder.errors, 1)
}
