// Package testsupport carries golden-file and fixture helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// CaseVector is one golden conversion scenario: the input string, the word
// fragments the splitter must produce, and the expected rendering for every
// style.
type CaseVector struct {
	Input string   `yaml:"input"`
	Words []string `yaml:"words"`
	Camel string   `yaml:"camel"`
	Kebab string   `yaml:"kebab"`
	Lower string   `yaml:"lower"`
	Mixed string   `yaml:"mixed"`
	Snake string   `yaml:"snake"`
	Title string   `yaml:"title"`
	Upper string   `yaml:"upper"`
}

// MustLoadCaseVectors reads a YAML vector file into a slice of scenarios.
func MustLoadCaseVectors(t *testing.T, path string) []CaseVector {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load vectors: %v", err)
	}
	var out []CaseVector
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal vectors: %v", err)
	}
	return out
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents. Tests
// can assert the renderer returns and writes the same payload without
// duplicating buffer setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
