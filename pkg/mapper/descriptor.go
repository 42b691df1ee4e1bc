package mapper

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/go-flexform/pkg/constraints"
	"github.com/goliatone/go-flexform/pkg/widgets"
)

// Choice is one label/value pair offered by a choice widget.
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Choices keeps choice pairs in schema order.
type Choices []Choice

// Map returns the choices keyed by label.
func (c Choices) Map() map[string]string {
	out := make(map[string]string, len(c))
	for _, choice := range c {
		out[choice.Label] = choice.Value
	}
	return out
}

// MarshalJSON encodes the choices as a JSON object keyed by label, keeping
// schema order.
func (c Choices) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, choice := range c {
		if idx > 0 {
			buf.WriteByte(',')
		}
		if err := writeKeyValue(&buf, choice.Label, choice.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OptionBag carries the widget options handed to the form framework.
// Multiple is only meaningful when true; Choices is nil unless the schema
// declared an option list.
type OptionBag struct {
	Label       string
	Required    bool
	Constraints []constraints.Constraint
	Multiple    bool
	Choices     Choices
}

// MarshalJSON writes label, required and constraints, followed by multiple
// and choices only when they apply.
func (b OptionBag) MarshalJSON() ([]byte, error) {
	list := b.Constraints
	if list == nil {
		list = []constraints.Constraint{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKeyValue(&buf, "label", b.Label); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKeyValue(&buf, "required", b.Required); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKeyValue(&buf, "constraints", list); err != nil {
		return nil, err
	}
	if b.Multiple {
		buf.WriteByte(',')
		if err := writeKeyValue(&buf, "multiple", true); err != nil {
			return nil, err
		}
	}
	if b.Choices != nil {
		buf.WriteByte(',')
		if err := writeKeyValue(&buf, "choices", b.Choices); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldDescriptor is the resolved description of one form input.
type FieldDescriptor struct {
	Name    string       `json:"name"`
	Widget  widgets.Kind `json:"widget"`
	Options OptionBag    `json:"options"`
}

func writeKeyValue(buf *bytes.Buffer, key string, value any) error {
	encodedKey, err := json.Marshal(key)
	if err != nil {
		return err
	}
	encodedValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(encodedKey)
	buf.WriteByte(':')
	buf.Write(encodedValue)
	return nil
}
