package constraints

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_NewBuiltins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		id     string
		config map[string]any
		want   Constraint
	}{
		{name: "not blank", id: "NotBlank", want: NotBlank()},
		{name: "email with empty config", id: "Email", config: map[string]any{}, want: Email()},
		{name: "namespaced identifier", id: `Symfony\Component\Validator\Constraints\Email`, want: Email()},
		{name: "padded identifier", id: "  Url ", config: map[string]any{"message": "bad"}, want: Constraint{Kind: KindURL, Options: map[string]any{"message": "bad"}}},
		{name: "length", id: "Length", config: map[string]any{"min": 3, "max": float64(10)}, want: Constraint{Kind: KindLength, Options: map[string]any{"min": 3, "max": float64(10)}}},
		{name: "length exact", id: "Length", config: map[string]any{"value": 4}, want: Constraint{Kind: KindLength, Options: map[string]any{"min": 4, "max": 4}}},
		{name: "range negative", id: "Range", config: map[string]any{"min": -1.5}, want: Constraint{Kind: KindRange, Options: map[string]any{"min": -1.5}}},
		{name: "regex", id: "Regex", config: map[string]any{"pattern": "/^[a-z]+$/i"}, want: Constraint{Kind: KindRegex, Options: map[string]any{"pattern": "/^[a-z]+$/i"}}},
		{name: "regex shorthand", id: "Regex", config: map[string]any{"value": "^x$"}, want: Constraint{Kind: KindRegex, Options: map[string]any{"pattern": "^x$"}}},
		{name: "choice shorthand", id: "Choice", config: map[string]any{"value": []any{"a", "b"}}, want: Constraint{Kind: KindChoice, Options: map[string]any{"choices": []any{"a", "b"}}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := reg.New(tc.id, tc.config)
			if err != nil {
				t.Fatalf("new %s: %v", tc.id, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("constraint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_InvalidConfig(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		id     string
		config map[string]any
	}{
		{name: "length without bounds", id: "Length"},
		{name: "length negative", id: "Length", config: map[string]any{"min": -1}},
		{name: "length fractional", id: "Length", config: map[string]any{"max": 2.5}},
		{name: "length inverted", id: "Length", config: map[string]any{"min": 5, "max": 1}},
		{name: "range non numeric", id: "Range", config: map[string]any{"min": "one"}},
		{name: "regex missing pattern", id: "Regex"},
		{name: "regex blank", id: "Regex", config: map[string]any{"pattern": "  "}},
		{name: "regex not a string", id: "Regex", config: map[string]any{"pattern": 42}},
		{name: "choice empty", id: "Choice", config: map[string]any{"choices": []any{}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := reg.New(tc.id, tc.config)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRegistry_UnknownValidator(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.New("Iban", nil)
	if !errors.Is(err, ErrUnknownValidator) {
		t.Fatalf("expected ErrUnknownValidator, got %v", err)
	}
}

func TestRegistry_RegisterCustom(t *testing.T) {
	reg := NewEmptyRegistry()
	if err := reg.Register("Iban", plain("Iban")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(`App\Constraint\Iban`, plain("Iban")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(" ", plain("x")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register("Nil", nil); err == nil {
		t.Fatalf("expected nil factory error")
	}
	if !reg.Has("Iban") || reg.Has("Email") {
		t.Fatalf("unexpected Has results: %v", reg.List())
	}
	if diff := cmp.Diff([]string{"Iban"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ConfigIsCopied(t *testing.T) {
	reg := NewRegistry()
	config := map[string]any{"choices": []any{"a"}}

	got, err := reg.New("Choice", config)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got.Options["choices"].([]any)[0] = "mutated"
	if config["choices"].([]any)[0] != "a" {
		t.Fatalf("factory output must not alias the input configuration")
	}
}

func TestRegistry_RegexKeepsPCRESyntax(t *testing.T) {
	reg := NewRegistry()

	patterns := []string{
		`/^(?=.*\d).+$/`,
		`/^(\w)\1$/`,
		`/(?<year>\d{4})-(?P=year)/u`,
		`^[a-z]+$`,
	}
	for _, pattern := range patterns {
		got, err := reg.New("Regex", map[string]any{"pattern": pattern})
		if err != nil {
			t.Fatalf("pattern %s: %v", pattern, err)
		}
		if got.Options["pattern"] != pattern {
			t.Fatalf("pattern %s must be kept verbatim, got %v", pattern, got.Options["pattern"])
		}
	}
}

func TestConstraint_CloneIsDeep(t *testing.T) {
	original := Constraint{Kind: KindChoice, Options: map[string]any{"choices": []any{"a"}}}
	clone := original.Clone()
	clone.Options["choices"].([]any)[0] = "b"
	if original.Options["choices"].([]any)[0] != "a" {
		t.Fatalf("clone must not share nested values")
	}
	if (Constraint{Kind: KindEmail, Options: map[string]any{}}).Clone().Options != nil {
		t.Fatalf("empty options should clone to nil")
	}
}
