package question

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write question file: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "questions.yml", `featured:
  question: Which planet is red?
  options: [Mars, Venus]
questions:
  - question: What is 2 + 2?
    options: ["3", "4", "5"]
    answer: "4"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Featured().Text != "Which planet is red?" {
		t.Fatalf("unexpected featured question: %+v", s.Featured())
	}
	if s.Len() != 1 || s.Questions()[0].Answer != "4" {
		t.Fatalf("unexpected questions: %+v", s.Questions())
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "questions.json", `{
  "featured": {"question": "Pick one", "options": ["a", "b"]},
  "questions": [{"question": "Pick two", "options": ["c", "d"], "answer": "d"}]
}`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Questions()[0].Options; len(got) != 2 || got[1] != "d" {
		t.Fatalf("unexpected options: %v", got)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, "questions.yaml", `featured:
  question: q
  options: [a, b]
  correct: a
questions: []
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("expected yaml parse error, got %v", err)
	}
}

func TestLoadRejectsMultipleDocuments(t *testing.T) {
	path := writeFile(t, "questions.json", `{} {}`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "multiple documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeFile(t, "questions.yml", `featured:
  question: q
  options: [a, b]
questions:
  - question: broken
    options: [only]
`)
	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}
