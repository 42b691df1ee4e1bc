package constraints

import (
	"fmt"
	"math"
	"strings"
)

func (r *Registry) registerBuiltins() {
	r.MustRegister(KindNotBlank, plain(KindNotBlank))
	r.MustRegister(KindNotNull, plain(KindNotNull))
	r.MustRegister(KindEmail, plain(KindEmail))
	r.MustRegister(KindURL, plain(KindURL))
	r.MustRegister(KindLength, bounded(KindLength, true))
	r.MustRegister(KindCount, bounded(KindCount, true))
	r.MustRegister(KindRange, bounded(KindRange, false))
	r.MustRegister(KindRegex, regexFactory)
	r.MustRegister(KindChoice, choiceFactory)
}

// plain accepts any configuration, e.g. a custom message.
func plain(kind string) Factory {
	return func(config map[string]any) (Constraint, error) {
		return Constraint{Kind: kind, Options: config}, nil
	}
}

// bounded validates min/max style configuration. A bare "value" is treated as
// an exact bound, matching constraint constructors that take one argument.
// When whole is set the bounds must be non-negative integers.
func bounded(kind string, whole bool) Factory {
	return func(config map[string]any) (Constraint, error) {
		if exact, ok := config["value"]; ok && len(config) == 1 {
			config = map[string]any{"min": exact, "max": exact}
		}

		minVal, hasMin, err := numberOption(config, "min", whole)
		if err != nil {
			return Constraint{}, err
		}
		maxVal, hasMax, err := numberOption(config, "max", whole)
		if err != nil {
			return Constraint{}, err
		}
		if !hasMin && !hasMax {
			return Constraint{}, fmt.Errorf("%w: %s requires min or max", ErrInvalidConfig, kind)
		}
		if hasMin && hasMax && minVal > maxVal {
			return Constraint{}, fmt.Errorf("%w: %s min %v exceeds max %v", ErrInvalidConfig, kind, minVal, maxVal)
		}
		return Constraint{Kind: kind, Options: config}, nil
	}
}

func numberOption(config map[string]any, key string, whole bool) (float64, bool, error) {
	raw, ok := config[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	var value float64
	switch v := raw.(type) {
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint64:
		value = float64(v)
	case float64:
		value = v
	case float32:
		value = float64(v)
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidConfig, key, raw)
	}
	if whole && (value < 0 || value != math.Trunc(value)) {
		return 0, false, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrInvalidConfig, key, value)
	}
	return value, true, nil
}

// regexFactory only requires a pattern. Patterns are handed to the form
// framework untouched, so PCRE syntax such as /^(?=.*\d).+$/ is accepted.
func regexFactory(config map[string]any) (Constraint, error) {
	raw, ok := config["pattern"]
	if !ok {
		raw = config["value"]
	}
	pattern, isString := raw.(string)
	if !isString || strings.TrimSpace(pattern) == "" {
		return Constraint{}, fmt.Errorf("%w: Regex requires a non-empty pattern string", ErrInvalidConfig)
	}
	if _, ok := config["pattern"]; !ok {
		config = map[string]any{"pattern": pattern}
	}
	return Constraint{Kind: KindRegex, Options: config}, nil
}

func choiceFactory(config map[string]any) (Constraint, error) {
	raw, ok := config["choices"]
	if !ok {
		raw = config["value"]
	}
	choices, _ := raw.([]any)
	if len(choices) == 0 {
		return Constraint{}, fmt.Errorf("%w: Choice requires a non-empty choices list", ErrInvalidConfig)
	}
	if _, ok := config["choices"]; !ok {
		config = map[string]any{"choices": choices}
	}
	return Constraint{Kind: KindChoice, Options: config}, nil
}
