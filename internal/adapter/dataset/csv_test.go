package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spamsift/internal/domain"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "data.csv", "text,label\nFree prizes now,spam\nMeeting at 3pm,ham\n")

	examples, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(examples))
	}
	if examples[0].Text != "Free prizes now" || examples[0].Label != "spam" {
		t.Errorf("unexpected first example: %+v", examples[0])
	}
}

func TestLoadCSV_ColumnOrder(t *testing.T) {
	path := writeCSV(t, "data.csv", "label,text\nspam,Free prizes\n")

	examples, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 || examples[0].Label != "spam" || examples[0].Text != "Free prizes" {
		t.Errorf("expected columns resolved by name, got %+v", examples)
	}
}

func TestLoadCSV_SkipsBlankRows(t *testing.T) {
	path := writeCSV(t, "data.csv", "text,label\n,spam\nhello,\nvalid,ham\n")

	examples, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if examples[0].Text != "valid" {
		t.Errorf("expected the valid row, got %+v", examples[0])
	}
}

func TestLoadCSV_MissingColumns(t *testing.T) {
	path := writeCSV(t, "data.csv", "message,category\nhi,spam\n")

	_, err := LoadCSV(path)
	if !errors.Is(err, domain.ErrData) {
		t.Errorf("expected ErrData for missing columns, got %v", err)
	}
}

func TestLoadCSV_QuotedText(t *testing.T) {
	path := writeCSV(t, "data.csv", "text,label\n\"hello, with comma\",ham\n")

	examples, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 1 || examples[0].Text != "hello, with comma" {
		t.Errorf("expected quoted text preserved, got %+v", examples)
	}
}

func TestLoadFiles(t *testing.T) {
	first := writeCSV(t, "a.csv", "text,label\none,spam\n")
	second := writeCSV(t, "b.csv", "text,label\ntwo,ham\nthree,ham\n")

	examples, err := LoadFiles([]string{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 3 {
		t.Errorf("expected 3 examples, got %d", len(examples))
	}
}
