package render_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-textfilters/pkg/render"
	"github.com/goliatone/go-textfilters/pkg/testsupport"
)

func newEngine(t *testing.T, options ...render.Option) *render.Engine {
	t.Helper()

	engine, err := render.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineNewWithoutOptions(t *testing.T) {
	engine, err := render.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if engine == nil {
		t.Fatal("new engine returned nil")
	}

	got, err := engine.RenderString("{{ value | camel_case }}", map[string]any{"value": "some text"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "SomeText" {
		t.Fatalf("render = %q, want %q", got, "SomeText")
	}
}

func TestEngineRenderString(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderString(
			"{{ project | kebab_case }}/{{ project | snake_case }}",
			map[string]any{"project": "My Project"},
			w,
		)
	})

	want := "my-project/my_project"
	if result != want {
		t.Fatalf("render mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngineContextFromStruct(t *testing.T) {
	engine := newEngine(t)

	data := struct {
		Name string `json:"name"`
	}{Name: "article title"}

	got, err := engine.RenderString("{{ name | camel_case }}", data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ArticleTitle" {
		t.Fatalf("render from struct = %q, want %q", got, "ArticleTitle")
	}
}

func TestEngineGlobalData(t *testing.T) {
	engine := newEngine(t, render.WithGlobalData(map[string]any{"service": "billing api"}))

	got, err := engine.RenderString("{{ service | title_case }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Billing Api" {
		t.Fatalf("render with globals = %q, want %q", got, "Billing Api")
	}
}

func TestEngineFilterErrorSurfaces(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.RenderString("{{ value | upper_case }}", map[string]any{"value": 5})
	if err == nil {
		t.Fatal("rendering a number through upper_case succeeded, want error")
	}
	if !strings.Contains(err.Error(), "upper_case") {
		t.Fatalf("error %q does not name the filter", err)
	}
}

func TestEngineRenderReport(t *testing.T) {
	engine := newEngine(t)

	tpl, err := os.ReadFile(filepath.Join("testdata", "report.tpl"))
	if err != nil {
		t.Fatalf("read template: %v", err)
	}

	got, err := engine.RenderString(string(tpl), map[string]any{"title": "monthly usage report"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}

	goldenPath := filepath.Join("testdata", "report.golden")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if got != want {
		t.Fatalf("report mismatch\nwant: %q\n got: %q", want, got)
	}
}
