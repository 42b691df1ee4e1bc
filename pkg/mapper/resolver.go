package mapper

import (
	"errors"
	"strings"

	"github.com/goliatone/go-flexform/pkg/constraints"
	"github.com/goliatone/go-flexform/pkg/flexmodel"
	"github.com/goliatone/go-flexform/pkg/widgets"
)

// Option customises the resolver configuration.
type Option func(*Resolver)

// WithRegistry injects the constraint registry used to build validator
// overrides. A nil registry keeps the built-in one.
func WithRegistry(registry *constraints.Registry) Option {
	return func(r *Resolver) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithDatatypeRule appends a rule that runs for fields of the given data
// type, after any rules already registered for it.
func WithDatatypeRule(dataType flexmodel.DataType, rule DatatypeRule) Option {
	return func(r *Resolver) {
		if rule == nil {
			return
		}
		rules := append([]DatatypeRule(nil), r.rules[dataType]...)
		r.rules[dataType] = append(rules, rule)
	}
}

// Resolver maps form layouts onto field descriptors. It holds no mutable
// state once constructed and is safe for concurrent use.
type Resolver struct {
	schemas  flexmodel.SchemaLookup
	layouts  flexmodel.LayoutLookup
	registry *constraints.Registry
	rules    map[flexmodel.DataType][]DatatypeRule
}

// New constructs a Resolver reading field schemas from schemas and form
// layouts from layouts. A single *flexmodel.Store satisfies both.
func New(schemas flexmodel.SchemaLookup, layouts flexmodel.LayoutLookup, options ...Option) *Resolver {
	r := &Resolver{
		schemas:  schemas,
		layouts:  layouts,
		registry: defaultBuilder.registry,
		rules:    defaultRules(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Request selects the form to resolve. Object is the explicit model
// identifier; Form names one of its layouts.
type Request struct {
	Object string
	Form   string
}

// Resolve returns one descriptor per layout entry, in layout order. A blank
// Object or Form, or a layout the lookup does not know, yields no descriptors
// and no error. Any fatal error aborts the call without partial output.
func (r *Resolver) Resolve(req Request) ([]FieldDescriptor, error) {
	object := strings.TrimSpace(req.Object)
	form := strings.TrimSpace(req.Form)
	if object == "" || form == "" {
		return []FieldDescriptor{}, nil
	}
	if r.layouts == nil {
		return nil, errors.New("mapper: layout lookup is nil")
	}

	layout, ok := r.layouts.Form(object, form)
	if !ok {
		return []FieldDescriptor{}, nil
	}

	descriptors, err := r.ResolveLayout(object, layout)
	if err != nil {
		return nil, locate(err, object, form)
	}
	return descriptors, nil
}

// ResolveLayout resolves an already loaded layout against the schema lookup.
func (r *Resolver) ResolveLayout(object string, layout flexmodel.FormConfiguration) ([]FieldDescriptor, error) {
	descriptors := make([]FieldDescriptor, 0, len(layout.Fields))
	for _, entry := range layout.Fields {
		descriptor, err := r.ResolveEntry(object, entry)
		if err != nil {
			return nil, locate(err, object, layout.Name)
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

// ResolveEntry resolves a single layout entry.
func (r *Resolver) ResolveEntry(object string, entry flexmodel.LayoutEntry) (FieldDescriptor, error) {
	if r.schemas == nil {
		return FieldDescriptor{}, errors.New("mapper: schema lookup is nil")
	}
	field, ok := r.schemas.Field(object, entry.FieldName)
	if !ok {
		return FieldDescriptor{}, &ResolutionError{
			Object: object,
			Field:  entry.FieldName,
			Err:    ErrUnknownField,
		}
	}

	options, err := r.builder().build(entry, field)
	if err != nil {
		return FieldDescriptor{}, locate(err, object, "")
	}

	return FieldDescriptor{
		Name:    field.Name,
		Widget:  widgets.Resolve(entry, field),
		Options: options,
	}, nil
}

// BuildOptions assembles the option bag for a field using the resolver's
// registry and data type rules.
func (r *Resolver) BuildOptions(entry flexmodel.LayoutEntry, field flexmodel.FieldSchema) (OptionBag, error) {
	return r.builder().build(entry, field)
}

func (r *Resolver) builder() optionBuilder {
	return optionBuilder{registry: r.registry, rules: r.rules}
}
