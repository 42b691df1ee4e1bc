package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

const (
	formsExtensionKey      = "x-flexform-forms"
	enumLabelsExtensionKey = "x-enum-labels"
	multilineExtensionKey  = "x-multiline"
)

// LoadObjects parses an OpenAPI 3 document and converts every component
// schema of type object into a flexmodel.Object. Objects are returned sorted
// by name; their fields are sorted by property name.
func LoadObjects(ctx context.Context, data []byte) ([]flexmodel.Object, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	objects := make([]flexmodel.Object, 0, len(names))
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil || !isObjectSchema(ref.Value) {
			continue
		}
		obj, err := convertObject(name, ref.Value)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func convertObject(name string, schema *openapi3.Schema) (flexmodel.Object, error) {
	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	props := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	obj := flexmodel.Object{Name: name, Fields: make([]flexmodel.FieldSchema, 0, len(props))}
	for _, prop := range props {
		ref := schema.Properties[prop]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := convertField(prop, ref.Value)
		if _, ok := required[prop]; ok {
			field.Required = flexmodel.Bool(true)
		}
		obj.Fields = append(obj.Fields, field)
	}

	forms, err := convertForms(name, schema.Extensions[formsExtensionKey])
	if err != nil {
		return flexmodel.Object{}, err
	}
	obj.Forms = forms
	return obj, nil
}

func convertField(name string, schema *openapi3.Schema) flexmodel.FieldSchema {
	field := flexmodel.FieldSchema{
		Name:     name,
		DataType: dataTypeFor(schema),
		Label:    flexmodel.SanitizeLabel(schema.Title),
	}
	if field.Label == "" {
		field.Label = flexmodel.DefaultLabeler(name)
	}

	enumSource := schema
	if field.DataType == flexmodel.DataTypeSet && schema.Items != nil && schema.Items.Value != nil {
		enumSource = schema.Items.Value
	}
	if len(enumSource.Enum) > 0 {
		field.Options = enumOptions(enumSource)
	}
	return field
}

func dataTypeFor(schema *openapi3.Schema) flexmodel.DataType {
	format := strings.ToLower(strings.TrimSpace(schema.Format))
	switch {
	case schemaIs(schema, openapi3.TypeBoolean):
		return flexmodel.DataTypeBoolean
	case schemaIs(schema, openapi3.TypeInteger):
		return flexmodel.DataTypeInteger
	case schemaIs(schema, openapi3.TypeNumber):
		if format == "float" {
			return flexmodel.DataTypeFloat
		}
		return flexmodel.DataTypeDecimal
	case schemaIs(schema, openapi3.TypeString):
		return stringDataType(schema, format)
	case schemaIs(schema, openapi3.TypeArray):
		if items := schema.Items; items != nil && items.Value != nil && len(items.Value.Enum) > 0 {
			return flexmodel.DataTypeSet
		}
		return flexmodel.DataTypeJSON
	case schemaIs(schema, openapi3.TypeObject):
		return flexmodel.DataTypeJSON
	case len(schema.Enum) > 0:
		return flexmodel.DataTypeVarchar
	}
	if types := schema.Type; types != nil && len(types.Slice()) > 0 {
		return flexmodel.DataType(strings.ToUpper(types.Slice()[0]))
	}
	return ""
}

func stringDataType(schema *openapi3.Schema, format string) flexmodel.DataType {
	if len(schema.Enum) > 0 {
		return flexmodel.DataTypeVarchar
	}
	switch format {
	case "date":
		return flexmodel.DataTypeDate
	case "date-time":
		return flexmodel.DataTypeDateTime
	case "duration":
		return flexmodel.DataTypeDateInterval
	case "binary":
		return flexmodel.DataTypeFile
	case "html":
		return flexmodel.DataTypeHTML
	case "json":
		return flexmodel.DataTypeJSON
	case "textarea":
		return flexmodel.DataTypeText
	}
	if multiline, _ := schema.Extensions[multilineExtensionKey].(bool); multiline {
		return flexmodel.DataTypeText
	}
	return flexmodel.DataTypeVarchar
}

func enumOptions(schema *openapi3.Schema) []flexmodel.Option {
	labels, _ := schema.Extensions[enumLabelsExtensionKey].([]any)
	options := make([]flexmodel.Option, 0, len(schema.Enum))
	for idx, raw := range schema.Enum {
		value := fmt.Sprint(raw)
		label := value
		if idx < len(labels) {
			if text, ok := labels[idx].(string); ok && strings.TrimSpace(text) != "" {
				label = flexmodel.SanitizeLabel(text)
			}
		}
		options = append(options, flexmodel.Option{Label: label, Value: value})
	}
	return options
}

// convertForms reads the forms extension: a mapping of form name to a list
// of property names or {name, fieldtype} entries.
func convertForms(object string, raw any) (map[string]flexmodel.FormConfiguration, error) {
	if raw == nil {
		return nil, nil
	}
	declared, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q %s must be an object", object, formsExtensionKey)
	}

	forms := make(map[string]flexmodel.FormConfiguration, len(declared))
	for formName, rawFields := range declared {
		list, ok := rawFields.([]any)
		if !ok {
			return nil, fmt.Errorf("openapi: schema %q form %q must list fields", object, formName)
		}
		entries := make([]flexmodel.LayoutEntry, 0, len(list))
		for idx, item := range list {
			entry, err := convertLayoutEntry(item)
			if err != nil {
				return nil, fmt.Errorf("openapi: schema %q form %q entry %d: %w", object, formName, idx, err)
			}
			entries = append(entries, entry)
		}
		forms[formName] = flexmodel.FormConfiguration{Name: formName, Fields: entries}
	}
	return forms, nil
}

func convertLayoutEntry(item any) (flexmodel.LayoutEntry, error) {
	switch v := item.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return flexmodel.LayoutEntry{}, errors.New("field name is empty")
		}
		return flexmodel.LayoutEntry{FieldName: strings.TrimSpace(v)}, nil
	case map[string]any:
		name, _ := v["name"].(string)
		if strings.TrimSpace(name) == "" {
			return flexmodel.LayoutEntry{}, errors.New("field name is empty")
		}
		widget, _ := v["fieldtype"].(string)
		return flexmodel.LayoutEntry{FieldName: strings.TrimSpace(name), WidgetKind: strings.TrimSpace(widget)}, nil
	default:
		return flexmodel.LayoutEntry{}, fmt.Errorf("unsupported entry %T", item)
	}
}

func isObjectSchema(schema *openapi3.Schema) bool {
	return schemaIs(schema, openapi3.TypeObject) || (schema.Type == nil && len(schema.Properties) > 0)
}

func schemaIs(schema *openapi3.Schema, typ string) bool {
	return schema.Type != nil && schema.Type.Is(typ)
}
