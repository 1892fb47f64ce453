package format

// Built-in format names.
const (
	NameText = "text"
	NameJSON = "json"
	NameYAML = "yaml"
)

// RegisterBuiltins registers the text, json, and yaml formatters on reg.
// "yml" is accepted for yaml.
func RegisterBuiltins(reg *Registry) {
	reg.Register(NameText, Text{})
	reg.Register(NameJSON, JSON{})
	reg.Register(NameYAML, YAML{}, "yml")
}
