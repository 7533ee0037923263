package testutil

import (
	"testing"

	"mailstub/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestStubControllerContext_PropertyBagIsLive(t *testing.T) {
	sut := NewStubControllerContext("account", "signup")

	sut.PropertyBag()["user"] = "alice"

	assert.Equal(t, domain.PropertyBag{"user": "alice"}, sut.PropertyBag())
	assert.Equal(t, "account", sut.Name())
	assert.Equal(t, "signup", sut.Action())
}

func TestStubControllerContext_PropertyBagIsCreatedLazily(t *testing.T) {
	sut := &StubControllerContext{}

	sut.PropertyBag()["user"] = "alice"

	assert.Equal(t, "alice", sut.Bag["user"])
}

func TestStubControllerContext_NilContextHasNoPropertyBag(t *testing.T) {
	var sut *StubControllerContext

	assert.Nil(t, sut.PropertyBag())
}

func TestStubEmailSender_RecordsMessage(t *testing.T) {
	context := NewStubEngineContext()
	sut := NewStubEmailSender(context)

	err := sut.Send(domain.NewMailMessage("from@example.com", "to@example.com", "hello", "body"))

	assert.NoError(t, err)
	AssertMessageSent(t, context, "to@example.com", "hello")
}
