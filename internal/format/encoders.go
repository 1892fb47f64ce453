package format

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/contactbook/internal/contact"
)

// JSON writes records as an indented JSON array.
type JSON struct{}

func (JSON) Format(w io.Writer, records []contact.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(views(records)); err != nil {
		return fmt.Errorf("format: encoding json: %w", err)
	}
	return nil
}

// YAML writes records as a YAML sequence under a "contacts" key.
type YAML struct{}

func (YAML) Format(w io.Writer, records []contact.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Contacts []View `yaml:"contacts"`
	}{Contacts: views(records)}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("format: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("format: encoding yaml: %w", err)
	}
	return nil
}
