package flexmodel

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValidatorOverride names a validator and the configuration it should be
// instantiated with.
type ValidatorOverride struct {
	Name   string         `json:"name" yaml:"name"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// ValidatorOverrides keeps validator overrides in declaration order. In
// documents it is written as a mapping of validator name to configuration;
// decoding preserves the mapping's key order. Non-mapping configuration values
// are stored under the "value" key.
type ValidatorOverrides []ValidatorOverride

// UnmarshalJSON decodes an ordered JSON object.
func (v *ValidatorOverrides) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("flexmodel: validators: %w", err)
	}
	if tok == nil {
		*v = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("flexmodel: validators must be an object, got %v", tok)
	}

	out := make(ValidatorOverrides, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("flexmodel: validators: %w", err)
		}
		name, _ := keyTok.(string)
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("flexmodel: validator %q: %w", name, err)
		}
		out = append(out, ValidatorOverride{Name: name, Config: configFromValue(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("flexmodel: validators: %w", err)
	}
	*v = out
	return nil
}

// MarshalJSON writes the overrides back as an ordered JSON object.
func (v ValidatorOverrides) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, override := range v {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(override.Name)
		if err != nil {
			return nil, err
		}
		cfg := override.Config
		if cfg == nil {
			cfg = map[string]any{}
		}
		value, err := json.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes an ordered YAML mapping.
func (v *ValidatorOverrides) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*v = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("flexmodel: validators must be a mapping (line %d)", node.Line)
	}

	out := make(ValidatorOverrides, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		var raw any
		if err := valueNode.Decode(&raw); err != nil {
			return fmt.Errorf("flexmodel: validator %q: %w", keyNode.Value, err)
		}
		out = append(out, ValidatorOverride{Name: keyNode.Value, Config: configFromValue(raw)})
	}
	*v = out
	return nil
}

func configFromValue(raw any) map[string]any {
	switch value := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		return value
	default:
		return map[string]any{"value": value}
	}
}
