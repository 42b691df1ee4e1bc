// Package openapi derives flexmodel objects from the component schemas of an
// OpenAPI 3 document, so forms can be resolved against an API contract instead
// of a hand-written model file. Parsing is delegated to kin-openapi. Property
// types and formats map onto flexmodel data types, enums become option lists,
// and form layouts may be declared per schema with the x-flexform-forms
// extension.
package openapi
