package analyzer

import (
	"strings"
	"testing"
)

func TestPIIRedactor_Email(t *testing.T) {
	r := NewPIIRedactor()

	out := r.Redact("write to alice.smith+spam@mail.example.org today")
	if strings.Contains(out, "@") {
		t.Errorf("expected address removed, got %q", out)
	}
	if !strings.Contains(out, EmailPlaceholder) {
		t.Errorf("expected %q in output, got %q", EmailPlaceholder, out)
	}
}

func TestPIIRedactor_URL(t *testing.T) {
	r := NewPIIRedactor()

	for _, input := range []string{
		"click https://evil.example/path?x=1 now",
		"click www.evil.example now",
	} {
		out := r.Redact(input)
		if !strings.Contains(out, URLPlaceholder) {
			t.Errorf("Redact(%q) = %q, expected %q", input, out, URLPlaceholder)
		}
		if strings.Contains(out, "evil") {
			t.Errorf("Redact(%q) = %q, expected URL removed", input, out)
		}
	}
}

func TestPIIRedactor_Numbers(t *testing.T) {
	r := NewPIIRedactor()

	out := r.Redact("call 5550123 before 9")
	if !strings.Contains(out, NumberPlaceholder) {
		t.Errorf("expected %q in output, got %q", NumberPlaceholder, out)
	}
	if strings.Contains(out, "5550123") {
		t.Errorf("expected long number removed, got %q", out)
	}
	if !strings.Contains(out, "9") {
		t.Errorf("expected single digit kept, got %q", out)
	}
}
