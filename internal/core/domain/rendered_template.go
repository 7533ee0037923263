package domain

// PropertyBag holds the named values a controller exposes to its views.
type PropertyBag map[string]interface{}

// RenderedTemplate is one recorded render call.
type RenderedTemplate struct {
	Name       string                 `yaml:"name"`
	Parameters map[string]interface{} `yaml:"parameters"`
}
