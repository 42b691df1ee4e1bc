// Package cli holds the interactive pieces of the flexform command line tool.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("cli: aborted")

// Picker asks the user to choose one of options.
type Picker interface {
	Pick(ctx context.Context, message string, options []string) (string, error)
}

type surveyPicker struct {
	pageSize int
}

// NewSurveyPicker returns a Picker backed by survey select prompts.
func NewSurveyPicker() Picker {
	return &surveyPicker{pageSize: 10}
}

func (p *surveyPicker) Pick(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: p.pageSize,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return out, nil
}

// Selection is the object/form pair a resolution runs against.
type Selection struct {
	Object string
	Form   string
}

// Complete fills the blanks of sel by prompting through picker. A single
// candidate is chosen without prompting.
func Complete(ctx context.Context, picker Picker, store *flexmodel.Store, sel Selection) (Selection, error) {
	if sel.Object == "" {
		object, err := choose(ctx, picker, "Object", store.Objects())
		if err != nil {
			return Selection{}, err
		}
		sel.Object = object
	}
	if sel.Form == "" {
		form, err := choose(ctx, picker, fmt.Sprintf("Form of %s", sel.Object), store.FormNames(sel.Object))
		if err != nil {
			return Selection{}, err
		}
		sel.Form = form
	}
	return sel, nil
}

func choose(ctx context.Context, picker Picker, message string, options []string) (string, error) {
	switch len(options) {
	case 0:
		return "", fmt.Errorf("cli: no candidates for %s", message)
	case 1:
		return options[0], nil
	}
	if picker == nil {
		return "", fmt.Errorf("cli: %s is ambiguous and no picker is configured", message)
	}
	return picker.Pick(ctx, message, options)
}
