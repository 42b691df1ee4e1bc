// Package mapper turns a form layout plus the model's field schemas into an
// ordered list of field descriptors: the widget kind to render and the option
// bag (label, required flag, constraints, multiple, choices) the form
// framework needs to build the input. Resolution is a pure function of its
// inputs; every call allocates fresh descriptors and never touches the lookups
// beyond reading them.
//
// Errors name the configuration that caused them. A layout entry pointing at
// a field the schema does not know yields ErrUnknownField, and a validator
// override the constraint registry cannot build yields ErrUnknownValidator or
// constraints.ErrInvalidConfig, always wrapped in a *ResolutionError. A
// missing layout is not an error and resolves to zero descriptors.
package mapper
