package domain

// Snapshot is a copy of everything a recorder has seen.
type Snapshot struct {
	Templates []RenderedTemplate `yaml:"templates"`
	Messages  []MailMessage      `yaml:"messages"`
}

func (s *Snapshot) FindTemplates(name string) []RenderedTemplate {
	var found []RenderedTemplate
	for _, template := range s.Templates {
		if template.Name == name {
			found = append(found, template)
		}
	}
	return found
}
