package app

import (
	"strings"

	"github.com/ekarslan/rolodex/internal/validate"
)

// Prompter supplies user interaction for the interactive flows. The CLI
// implements it over the terminal; tests script it.
type Prompter interface {
	// Prompt asks for one value. ok is false when the user cancels.
	Prompt(label string) (value string, ok bool)

	// Confirm asks a yes/no question.
	Confirm(message string) bool

	// Notify shows a message (validation errors, operation results).
	Notify(message string)
}

// FormState tracks where a form-driven flow is. Flows move
// collecting → validating per field, then submitting once every field
// passed, ending in done or cancelled.
type FormState int

const (
	StateCollecting FormState = iota
	StateValidating
	StateSubmitting
	StateDone
	StateCancelled
)

// FormField is one input slot of a form.
type FormField struct {
	Label string
	Kind  validate.Field
}

// Form collects a fixed set of validated fields from a Prompter. Invalid
// input re-prompts with the field's error message until the value passes or
// the user cancels; cancellation at any field abandons the whole form
// before any network call is made.
type Form struct {
	prompter Prompter
	state    FormState
}

// NewForm creates a form bound to a prompter.
func NewForm(p Prompter) *Form {
	return &Form{prompter: p, state: StateCollecting}
}

// State returns the form's current state.
func (f *Form) State() FormState { return f.state }

// Collect walks the fields in order and returns the trimmed, validated
// values. ok is false when the user cancelled.
func (f *Form) Collect(fields []FormField) (values []string, ok bool) {
	values = make([]string, 0, len(fields))
	for _, field := range fields {
		f.state = StateCollecting
		for {
			raw, ok := f.prompter.Prompt(field.Label)
			if !ok {
				f.state = StateCancelled
				return nil, false
			}

			f.state = StateValidating
			value := strings.TrimSpace(raw)
			if validate.Check(field.Kind, value) {
				values = append(values, value)
				break
			}

			f.prompter.Notify(validate.ErrorMessage(field.Kind))
			f.state = StateCollecting
		}
	}
	f.state = StateSubmitting
	return values, true
}

// MarkDone records that the enclosing flow submitted successfully.
func (f *Form) MarkDone() {
	f.state = StateDone
}
