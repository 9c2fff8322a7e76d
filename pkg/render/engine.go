// Package render hosts a small pongo2-backed engine for rendering template
// strings with the text filters preregistered.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"

	textfilters "github.com/goliatone/go-textfilters"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	name       string
	globalData map[string]any
}

// WithName overrides the template set name used in pongo2 error output.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[key] = value
		}
	}
}

// Engine renders template strings through a dedicated pongo2 template set.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New constructs an Engine with every text filter registered.
func New(options ...Option) (*Engine, error) {
	cfg := &config{name: "textfilters"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if err := textfilters.RegisterAll(); err != nil {
		return nil, err
	}

	// NewSet requires at least one loader even for string-only rendering;
	// use the same local loader pongo2's DefaultSet is built on.
	set := pongo2.NewSet(cfg.name, pongo2.MustNewLocalFileSystemLoader(""))
	if len(cfg.globalData) > 0 {
		globals, err := toContext(cfg.globalData)
		if err != nil {
			return nil, fmt.Errorf("render: apply global data: %w", err)
		}
		if set.Globals == nil {
			set.Globals = make(pongo2.Context)
		}
		set.Globals.Update(globals)
	}

	return &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// RenderString compiles and executes a template string against data,
// returning the result and copying it to any supplied writers. Compiled
// templates are cached by content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}

	tmpl, err := e.getTemplate(templateContent)
	if err != nil {
		return "", err
	}

	viewContext, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("render: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("render: execute template string: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) getTemplate(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[content]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[content]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromString(content)
	if err != nil {
		return nil, fmt.Errorf("render: parse template string: %w", err)
	}

	e.templates[content] = tmpl
	return tmpl, nil
}

// toContext accepts maps as-is and routes everything else through a JSON
// round trip so structs and nested values land as plain maps.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return pongo2.Context(out), nil
	}
}
