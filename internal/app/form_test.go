package app

import (
	"testing"

	"github.com/ekarslan/rolodex/internal/validate"
)

// scriptedPrompter feeds canned answers to a flow and records notices.
type scriptedPrompter struct {
	inputs   []string
	confirms []bool
	notices  []string
}

// cancelInput marks a scripted answer as "user cancelled the prompt".
const cancelInput = "\x00cancel"

func (p *scriptedPrompter) Prompt(label string) (string, bool) {
	if len(p.inputs) == 0 {
		return "", false
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	if next == cancelInput {
		return "", false
	}
	return next, true
}

func (p *scriptedPrompter) Confirm(message string) bool {
	if len(p.confirms) == 0 {
		return false
	}
	next := p.confirms[0]
	p.confirms = p.confirms[1:]
	return next
}

func (p *scriptedPrompter) Notify(message string) {
	p.notices = append(p.notices, message)
}

var testFields = []FormField{
	{Label: "Name", Kind: validate.FieldName},
	{Label: "Phone", Kind: validate.FieldPhone},
}

func TestFormCollect(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"  Ayşe Yılmaz ", "+90 532 111 22 33"}}
	form := NewForm(p)

	values, ok := form.Collect(testFields)
	if !ok {
		t.Fatal("Collect cancelled unexpectedly")
	}
	if values[0] != "Ayşe Yılmaz" {
		t.Errorf("name = %q, want trimmed value", values[0])
	}
	if values[1] != "+90 532 111 22 33" {
		t.Errorf("phone = %q", values[1])
	}
	if form.State() != StateSubmitting {
		t.Errorf("state = %v, want StateSubmitting", form.State())
	}

	form.MarkDone()
	if form.State() != StateDone {
		t.Errorf("state = %v, want StateDone", form.State())
	}
}

func TestFormRePromptsUntilValid(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"bad-name-1", "x2", "Ayşe", "+90 532 111 22 33"}}
	form := NewForm(p)

	values, ok := form.Collect(testFields)
	if !ok {
		t.Fatal("Collect cancelled unexpectedly")
	}
	if values[0] != "Ayşe" {
		t.Errorf("name = %q, want the third attempt", values[0])
	}
	if len(p.notices) != 2 {
		t.Errorf("got %d validation notices, want 2: %v", len(p.notices), p.notices)
	}
}

func TestFormCancelAbortsWholeForm(t *testing.T) {
	p := &scriptedPrompter{inputs: []string{"Ayşe", cancelInput}}
	form := NewForm(p)

	values, ok := form.Collect(testFields)
	if ok {
		t.Fatal("expected cancellation")
	}
	if values != nil {
		t.Errorf("values = %v, want nil after cancel", values)
	}
	if form.State() != StateCancelled {
		t.Errorf("state = %v, want StateCancelled", form.State())
	}
}
