package testutil

import (
	"mailstub/internal/core/domain"
	"mailstub/internal/ports"
)

var (
	_ ports.Controller        = (*StubController)(nil)
	_ ports.ControllerContext = (*StubControllerContext)(nil)
)

type StubController struct {
	ControllerName string
}

func (c *StubController) Name() string {
	return c.ControllerName
}

type StubControllerContext struct {
	ControllerName string
	ActionName     string
	Bag            domain.PropertyBag
}

func NewStubControllerContext(controllerName string, actionName string) *StubControllerContext {
	return &StubControllerContext{
		ControllerName: controllerName,
		ActionName:     actionName,
		Bag:            domain.PropertyBag{},
	}
}

func (c *StubControllerContext) Name() string {
	return c.ControllerName
}

func (c *StubControllerContext) Action() string {
	return c.ActionName
}

// PropertyBag returns the live bag; values set on it are visible to later renders.
func (c *StubControllerContext) PropertyBag() domain.PropertyBag {
	if c == nil {
		return nil
	}
	if c.Bag == nil {
		c.Bag = domain.PropertyBag{}
	}
	return c.Bag
}
