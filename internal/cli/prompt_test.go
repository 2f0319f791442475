package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/epicevents/crm/internal/services"
)

func newPromptRunner(input string) (*Runner, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewRunnerWithIO(nil, strings.NewReader(input), out), out
}

func TestPromptString(t *testing.T) {
	r, out := newPromptRunner("  Jane Doe  \n")

	got, err := r.promptString("Full name")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != "Jane Doe" {
		t.Fatalf("value = %q, want trimmed input", got)
	}
	if !strings.Contains(out.String(), "Full name: ") {
		t.Fatalf("label not printed: %q", out.String())
	}
}

func TestPromptInt(t *testing.T) {
	r, _ := newPromptRunner("42\n")
	got, err := r.promptInt("Client ID")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != 42 {
		t.Fatalf("value = %d, want 42", got)
	}

	r, _ = newPromptRunner("abc\n")
	if _, err := r.promptInt("Client ID"); !services.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestPromptOptionalID(t *testing.T) {
	r, _ := newPromptRunner("\n")
	got, err := r.promptOptionalID("Event ID")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != 0 {
		t.Fatalf("value = %d, want 0 for blank input", got)
	}

	r, _ = newPromptRunner("7\n")
	got, err = r.promptOptionalID("Event ID")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != 7 {
		t.Fatalf("value = %d, want 7", got)
	}
}

func TestPromptOptionalFloat(t *testing.T) {
	r, _ := newPromptRunner("\n")
	got, err := r.promptOptionalFloat("Total amount")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != nil {
		t.Fatalf("value = %v, want nil for blank input", *got)
	}

	r, _ = newPromptRunner("99.50\n")
	got, err = r.promptOptionalFloat("Total amount")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got == nil || *got != 99.5 {
		t.Fatalf("value = %v, want 99.5", got)
	}
}

func TestRenderTable(t *testing.T) {
	r, out := newPromptRunner("")

	r.renderTable("Clients", []string{"ID", "Full name"}, [][]string{
		{"1", "Kevin Casey"},
	})

	text := out.String()
	for _, want := range []string{"Clients", "ID", "Full name", "--", "Kevin Casey"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}
