package widgets

import (
	"testing"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

func TestResolve_OverrideWins(t *testing.T) {
	entry := flexmodel.LayoutEntry{FieldName: "flag", WidgetKind: "checkbox"}
	field := flexmodel.FieldSchema{Name: "flag", DataType: flexmodel.DataTypeInteger}

	if got := Resolve(entry, field); got != Kind("checkbox") {
		t.Fatalf("override should be returned verbatim, got %q", got)
	}
}

func TestResolve_BlankOverrideIgnored(t *testing.T) {
	entry := flexmodel.LayoutEntry{FieldName: "age", WidgetKind: "   "}
	field := flexmodel.FieldSchema{Name: "age", DataType: flexmodel.DataTypeInteger}

	if got := Resolve(entry, field); got != KindInteger {
		t.Fatalf("blank override should fall back to table, got %q", got)
	}
}

func TestResolve_Table(t *testing.T) {
	options := []flexmodel.Option{{Label: "A", Value: "a"}}

	cases := []struct {
		name   string
		field  flexmodel.FieldSchema
		expect Kind
	}{
		{name: "boolean has no default", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeBoolean}, expect: KindNone},
		{name: "date", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeDate}, expect: KindDate},
		{name: "date interval", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeDateInterval}, expect: KindPlainText},
		{name: "datetime", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeDateTime}, expect: KindDateTime},
		{name: "decimal", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeDecimal}, expect: KindNumber},
		{name: "file", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeFile}, expect: KindFile},
		{name: "float", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeFloat}, expect: KindNumber},
		{name: "integer", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeInteger}, expect: KindInteger},
		{name: "set", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeSet}, expect: KindChoice},
		{name: "text", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeText}, expect: KindMultilineText},
		{name: "html", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeHTML}, expect: KindMultilineText},
		{name: "json", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeJSON}, expect: KindMultilineText},
		{name: "varchar without options", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeVarchar}, expect: KindPlainText},
		{name: "varchar with options", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeVarchar, Options: options}, expect: KindChoice},
		{name: "varchar with empty options", field: flexmodel.FieldSchema{DataType: flexmodel.DataTypeVarchar, Options: []flexmodel.Option{}}, expect: KindChoice},
		{name: "unknown type", field: flexmodel.FieldSchema{DataType: "GEOPOINT"}, expect: KindNone},
		{name: "lowercase is unknown", field: flexmodel.FieldSchema{DataType: "integer"}, expect: KindNone},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(flexmodel.LayoutEntry{}, tc.field); got != tc.expect {
				t.Fatalf("resolve %s: want %q, got %q", tc.name, tc.expect, got)
			}
		})
	}
}

func TestDefaultKind_CoversEveryDataType(t *testing.T) {
	for _, dt := range flexmodel.DataTypes() {
		if _, ok := defaultKinds[dt]; !ok {
			t.Fatalf("data type %s missing from table", dt)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindNone.String() != "none" {
		t.Fatalf("KindNone should print as none, got %q", KindNone.String())
	}
	if KindChoice.String() != "choice" {
		t.Fatalf("unexpected string for choice: %q", KindChoice.String())
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, kind := range append(Kinds(), KindNone) {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("marshal %q: %v", kind, err)
		}
		var decoded Kind
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if decoded != kind {
			t.Fatalf("round trip mismatch: want %q got %q", kind, decoded)
		}
	}
}
