package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-flexform/pkg/constraints"
)

var (
	// ErrUnknownField reports a layout entry naming a field the schema lookup
	// does not know.
	ErrUnknownField = errors.New("mapper: unknown field")

	// ErrUnknownValidator reports a validator override with no registered
	// constraint factory.
	ErrUnknownValidator = constraints.ErrUnknownValidator
)

// ResolutionError locates a fatal resolution failure in the configuration.
// Empty location fields are omitted from the message.
type ResolutionError struct {
	Object    string
	Form      string
	Field     string
	Validator string
	Err       error
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("mapper:")
	if e.Object != "" {
		fmt.Fprintf(&b, " object %q", e.Object)
	}
	if e.Form != "" {
		fmt.Fprintf(&b, " form %q", e.Form)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Validator != "" {
		fmt.Fprintf(&b, " validator %q", e.Validator)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func locate(err error, object, form string) error {
	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		if resErr.Object == "" {
			resErr.Object = object
		}
		if resErr.Form == "" {
			resErr.Form = form
		}
		return resErr
	}
	return &ResolutionError{Object: object, Form: form, Err: err}
}
