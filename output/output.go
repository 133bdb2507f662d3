// Package output renders command results as plain text, YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format is an output format for CLI commands.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// Default is used for unknown format names.
const Default = Text

// Parse maps a --output value to a Format.
func Parse(name string) (Format, error) {
	switch Format(name) {
	case "", Text:
		return Text, nil
	case YAML:
		return YAML, nil
	case JSON:
		return JSON, nil
	}
	return Default, fmt.Errorf("unknown output format %q (want text, yaml or json)", name)
}

// Texter is implemented by results with a plain text rendering.
type Texter interface {
	Text() string
}

// Write renders data to w in format. Text output needs a Texter or a
// string; anything else falls back to YAML.
func Write(w io.Writer, format Format, data any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(data)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	case Text:
		switch v := data.(type) {
		case Texter:
			_, err := fmt.Fprintln(w, v.Text())
			return err
		case string:
			_, err := fmt.Fprintln(w, v)
			return err
		}
		return Write(w, YAML, data)
	}
	return fmt.Errorf("unknown output format: %s", format)
}
