package widgets

import (
	"strings"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

// Kind identifies the category of input control to render.
type Kind string

// Built-in widget kinds. KindNone leaves the choice to the renderer.
const (
	KindNone          Kind = ""
	KindPlainText     Kind = "plain-text"
	KindMultilineText Kind = "multiline-text"
	KindDate          Kind = "date"
	KindDateTime      Kind = "date-time"
	KindNumber        Kind = "number"
	KindInteger       Kind = "integer"
	KindFile          Kind = "file"
	KindChoice        Kind = "choice"
)

// String returns the kind identifier, or "none" for KindNone.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}

// MarshalText encodes KindNone as "none".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reverses MarshalText.
func (k *Kind) UnmarshalText(data []byte) error {
	value := string(data)
	if value == "none" {
		value = ""
	}
	*k = Kind(value)
	return nil
}

// defaultKinds maps data types to widget kinds. BOOLEAN has no widget and
// maps to KindNone like any unlisted type.
// VARCHAR switches to KindChoice when the schema declares options.
var defaultKinds = map[flexmodel.DataType]Kind{
	flexmodel.DataTypeBoolean:      KindNone,
	flexmodel.DataTypeDate:         KindDate,
	flexmodel.DataTypeDateInterval: KindPlainText,
	flexmodel.DataTypeDateTime:     KindDateTime,
	flexmodel.DataTypeDecimal:      KindNumber,
	flexmodel.DataTypeFile:         KindFile,
	flexmodel.DataTypeFloat:        KindNumber,
	flexmodel.DataTypeInteger:      KindInteger,
	flexmodel.DataTypeSet:          KindChoice,
	flexmodel.DataTypeText:         KindMultilineText,
	flexmodel.DataTypeHTML:         KindMultilineText,
	flexmodel.DataTypeJSON:         KindMultilineText,
	flexmodel.DataTypeVarchar:      KindPlainText,
}

// Resolve returns the widget kind for a layout entry and its field schema. A
// non-blank override on the entry is returned verbatim without checking it
// against the data type.
func Resolve(entry flexmodel.LayoutEntry, field flexmodel.FieldSchema) Kind {
	if strings.TrimSpace(entry.WidgetKind) != "" {
		return Kind(entry.WidgetKind)
	}
	if field.DataType == flexmodel.DataTypeVarchar && field.HasOptions() {
		return KindChoice
	}
	return DefaultKind(field.DataType)
}

// DefaultKind returns the table entry for a data type, ignoring options.
// Unrecognised data types resolve to KindNone.
func DefaultKind(dataType flexmodel.DataType) Kind {
	return defaultKinds[dataType]
}

// Kinds lists the built-in widget kinds, excluding KindNone.
func Kinds() []Kind {
	return []Kind{
		KindPlainText,
		KindMultilineText,
		KindDate,
		KindDateTime,
		KindNumber,
		KindInteger,
		KindFile,
		KindChoice,
	}
}
