package constraints

// Built-in constraint kinds.
const (
	KindNotBlank = "NotBlank"
	KindNotNull  = "NotNull"
	KindEmail    = "Email"
	KindURL      = "Url"
	KindLength   = "Length"
	KindRegex    = "Regex"
	KindRange    = "Range"
	KindChoice   = "Choice"
	KindCount    = "Count"
)

// Constraint is a named validation rule plus its configuration. Options is nil
// when the rule carries no configuration.
type Constraint struct {
	Kind    string         `json:"kind"`
	Options map[string]any `json:"options,omitempty"`
}

// NotBlank returns the constraint derived from a required field.
func NotBlank() Constraint {
	return Constraint{Kind: KindNotBlank}
}

// Email returns an unconfigured Email constraint.
func Email() Constraint {
	return Constraint{Kind: KindEmail}
}

// Clone returns a deep copy of the constraint configuration.
func (c Constraint) Clone() Constraint {
	return Constraint{Kind: c.Kind, Options: cloneConfig(c.Options)}
}

func cloneConfig(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[key] = cloneValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, nested := range v {
			out[idx] = cloneValue(nested)
		}
		return out
	default:
		return v
	}
}
