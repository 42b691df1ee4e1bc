package flexmodel

// DataType is the declared storage type of a schema field.
type DataType string

const (
	DataTypeBoolean      DataType = "BOOLEAN"
	DataTypeDate         DataType = "DATE"
	DataTypeDateInterval DataType = "DATEINTERVAL"
	DataTypeDateTime     DataType = "DATETIME"
	DataTypeDecimal      DataType = "DECIMAL"
	DataTypeFile         DataType = "FILE"
	DataTypeFloat        DataType = "FLOAT"
	DataTypeInteger      DataType = "INTEGER"
	DataTypeSet          DataType = "SET"
	DataTypeText         DataType = "TEXT"
	DataTypeHTML         DataType = "HTML"
	DataTypeJSON         DataType = "JSON"
	DataTypeVarchar      DataType = "VARCHAR"
)

// DataTypes lists the recognised data types in declaration order.
func DataTypes() []DataType {
	return []DataType{
		DataTypeBoolean,
		DataTypeDate,
		DataTypeDateInterval,
		DataTypeDateTime,
		DataTypeDecimal,
		DataTypeFile,
		DataTypeFloat,
		DataTypeInteger,
		DataTypeSet,
		DataTypeText,
		DataTypeHTML,
		DataTypeJSON,
		DataTypeVarchar,
	}
}

// Option is a single label/value pair of an enumerated field.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldSchema describes one field of an object as declared by the model
// configuration. A nil Options slice means the field carries no option list;
// a nil Required pointer means the flag was not declared.
type FieldSchema struct {
	Name     string   `json:"name" yaml:"name"`
	DataType DataType `json:"datatype" yaml:"datatype"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Required *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Options  []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// HasOptions reports whether the schema declares an option list, even an
// empty one.
func (f FieldSchema) HasOptions() bool {
	return f.Options != nil
}

// IsRequired returns the declared required flag, defaulting to false.
func (f FieldSchema) IsRequired() bool {
	return f.Required != nil && *f.Required
}

// LayoutEntry references a schema field from a form layout. WidgetKind, when
// set, bypasses data type derivation. ValidatorOverrides, when non-nil,
// replace the default constraints entirely.
type LayoutEntry struct {
	FieldName          string             `json:"name" yaml:"name"`
	WidgetKind         string             `json:"fieldtype,omitempty" yaml:"fieldtype,omitempty"`
	ValidatorOverrides ValidatorOverrides `json:"validators,omitempty" yaml:"validators,omitempty"`
}

// HasValidatorOverrides reports whether the entry declares a validators
// mapping, even an empty one.
func (e LayoutEntry) HasValidatorOverrides() bool {
	return e.ValidatorOverrides != nil
}

// FormConfiguration is one named, ordered form layout of an object.
type FormConfiguration struct {
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Fields []LayoutEntry `json:"fields" yaml:"fields"`
}

// Object groups the field schemas and form layouts of a single model.
type Object struct {
	Name   string                       `json:"name" yaml:"name"`
	Fields []FieldSchema                `json:"fields" yaml:"fields"`
	Forms  map[string]FormConfiguration `json:"forms,omitempty" yaml:"forms,omitempty"`
}

// SchemaLookup resolves field schemas by object and field name.
type SchemaLookup interface {
	Field(object, field string) (FieldSchema, bool)
}

// LayoutLookup resolves form layouts by object and form name.
type LayoutLookup interface {
	Form(object, form string) (FormConfiguration, bool)
}

// Bool returns a pointer to v, handy when declaring FieldSchema.Required.
func Bool(v bool) *bool {
	return &v
}
