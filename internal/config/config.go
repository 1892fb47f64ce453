// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration.
type Config struct {
	Book   Book   `yaml:"book"`
	Sort   Sort   `yaml:"sort"`
	Output Output `yaml:"output"`
	Search Search `yaml:"search"`
}

// Book selects the contact book to load.
type Book struct {
	Path     string `yaml:"path"`      // Explicit book file; empty uses the overlay lookup
	LocalDir string `yaml:"local_dir"` // Directory checked before the embedded books
	Name     string `yaml:"name"`      // Book file name within LocalDir / embedded books
}

// Sort holds the default ordering for listed contacts.
// Unrecognised values leave the book order unchanged.
type Sort struct {
	Field string `yaml:"field"` // "username" | "email"
	Order string `yaml:"order"` // "ascending" | "descending"
}

// Output holds rendering settings.
type Output struct {
	Format string `yaml:"format"` // "text" | "json" | "yaml"
}

// Search holds interactive search settings.
type Search struct {
	Plain bool `yaml:"plain"` // Force the line-oriented search even on a TTY
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Book: Book{
			LocalDir: ".contactbook/books",
			Name:     "default.yaml",
		},
		Sort: Sort{
			Field: "username",
			Order: "ascending",
		},
		Output: Output{
			Format: "text",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Book.Path == "" && c.Book.Name == "" {
		return errors.New("config: book.name cannot be empty when book.path is unset")
	}
	if c.Output.Format == "" {
		return errors.New("config: output.format cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_BOOK, CONTACTBOOK_SORT_FIELD,
// CONTACTBOOK_SORT_ORDER, CONTACTBOOK_FORMAT, CONTACTBOOK_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTBOOK_BOOK"); v != "" {
		c.Book.Path = v
	}
	if v := os.Getenv("CONTACTBOOK_SORT_FIELD"); v != "" {
		c.Sort.Field = v
	}
	if v := os.Getenv("CONTACTBOOK_SORT_ORDER"); v != "" {
		c.Sort.Order = v
	}
	if v := os.Getenv("CONTACTBOOK_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("CONTACTBOOK_PLAIN"); v != "" {
		switch v {
		case "1", "true":
			c.Search.Plain = true
		case "0", "false":
			c.Search.Plain = false
		default:
			return fmt.Errorf("config: invalid CONTACTBOOK_PLAIN %q: want true or false", v)
		}
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Book   *rawBook   `yaml:"book"`
	Sort   *rawSort   `yaml:"sort"`
	Output *rawOutput `yaml:"output"`
	Search *rawSearch `yaml:"search"`
}

type rawBook struct {
	Path     *string `yaml:"path"`
	LocalDir *string `yaml:"local_dir"`
	Name     *string `yaml:"name"`
}

type rawSort struct {
	Field *string `yaml:"field"`
	Order *string `yaml:"order"`
}

type rawOutput struct {
	Format *string `yaml:"format"`
}

type rawSearch struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Book != nil {
		if layer.Book.Path != nil {
			c.Book.Path = *layer.Book.Path
		}
		if layer.Book.LocalDir != nil {
			c.Book.LocalDir = *layer.Book.LocalDir
		}
		if layer.Book.Name != nil {
			c.Book.Name = *layer.Book.Name
		}
	}
	if layer.Sort != nil {
		if layer.Sort.Field != nil {
			c.Sort.Field = *layer.Sort.Field
		}
		if layer.Sort.Order != nil {
			c.Sort.Order = *layer.Sort.Order
		}
	}
	if layer.Output != nil {
		if layer.Output.Format != nil {
			c.Output.Format = *layer.Output.Format
		}
	}
	if layer.Search != nil {
		if layer.Search.Plain != nil {
			c.Search.Plain = *layer.Search.Plain
		}
	}
}
