package mapper

import (
	"github.com/goliatone/go-flexform/pkg/constraints"
	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

// DatatypeRule adds data type specific options to a bag. Rules run after the
// label and required flag are seeded and before choices and constraints.
type DatatypeRule func(field flexmodel.FieldSchema, bag *OptionBag)

// MultipleRule marks the bag as multi-valued. It is registered for SET by
// default.
func MultipleRule(_ flexmodel.FieldSchema, bag *OptionBag) {
	bag.Multiple = true
}

func defaultRules() map[flexmodel.DataType][]DatatypeRule {
	return map[flexmodel.DataType][]DatatypeRule{
		flexmodel.DataTypeSet: {MultipleRule},
	}
}

type optionBuilder struct {
	registry *constraints.Registry
	rules    map[flexmodel.DataType][]DatatypeRule
}

var defaultBuilder = optionBuilder{
	registry: constraints.NewRegistry(),
	rules:    defaultRules(),
}

// BuildOptions assembles the option bag for a layout entry using the built-in
// constraint registry and data type rules.
func BuildOptions(entry flexmodel.LayoutEntry, field flexmodel.FieldSchema) (OptionBag, error) {
	return defaultBuilder.build(entry, field)
}

func (b optionBuilder) build(entry flexmodel.LayoutEntry, field flexmodel.FieldSchema) (OptionBag, error) {
	bag := OptionBag{
		Label:       field.Label,
		Required:    field.IsRequired(),
		Constraints: []constraints.Constraint{},
	}

	for _, rule := range b.rules[field.DataType] {
		rule(field, &bag)
	}

	if field.HasOptions() {
		bag.Choices = buildChoices(field.Options)
	}

	list, err := b.constraints(entry, field, bag.Required)
	if err != nil {
		return OptionBag{}, err
	}
	bag.Constraints = list
	return bag, nil
}

// constraints derives NotBlank from the required flag. Validator overrides,
// when declared, replace that list instead of extending it.
func (b optionBuilder) constraints(entry flexmodel.LayoutEntry, field flexmodel.FieldSchema, required bool) ([]constraints.Constraint, error) {
	list := []constraints.Constraint{}
	if required {
		list = append(list, constraints.NotBlank())
	}
	if !entry.HasValidatorOverrides() {
		return list, nil
	}

	list = make([]constraints.Constraint, 0, len(entry.ValidatorOverrides))
	for _, override := range entry.ValidatorOverrides {
		constraint, err := b.registry.New(override.Name, override.Config)
		if err != nil {
			return nil, &ResolutionError{Field: field.Name, Validator: override.Name, Err: err}
		}
		list = append(list, constraint)
	}
	return list, nil
}

// buildChoices keeps the first position of a repeated label and lets the
// later value win.
func buildChoices(options []flexmodel.Option) Choices {
	choices := make(Choices, 0, len(options))
	positions := make(map[string]int, len(options))
	for _, opt := range options {
		if idx, seen := positions[opt.Label]; seen {
			choices[idx].Value = opt.Value
			continue
		}
		positions[opt.Label] = len(choices)
		choices = append(choices, Choice{Label: opt.Label, Value: opt.Value})
	}
	return choices
}
