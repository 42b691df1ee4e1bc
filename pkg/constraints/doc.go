// Package constraints names the validation rules attached to field
// descriptors. Constraints are descriptions handed to the form framework; this
// package never runs them. Layout authors refer to constraints by identifier,
// and a Registry maps each identifier to a factory that checks the supplied
// configuration and builds the Constraint value.
package constraints
