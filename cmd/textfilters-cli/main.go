package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-textfilters/pkg/render"
)

func main() {
	templateArg := flag.String("template", "", "template string or path to a template file")
	contextPath := flag.String("context", "", "path to a JSON context file")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if strings.TrimSpace(*templateArg) == "" {
		log.Fatal("a -template string or file is required")
	}

	content, err := loadTemplate(*templateArg)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	data, err := loadContext(*contextPath)
	if err != nil {
		log.Fatalf("Failed to load context: %v", err)
	}

	engine, err := render.New()
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	rendered, err := engine.RenderString(content, data)
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

// loadTemplate treats the argument as inline template content when it carries
// template markup, otherwise as a file path. Plain text that names no
// existing file is still a valid template and passes through as-is.
func loadTemplate(arg string) (string, error) {
	if strings.Contains(arg, "{{") || strings.Contains(arg, "{%") {
		return arg, nil
	}
	content, err := os.ReadFile(arg)
	if errors.Is(err, os.ErrNotExist) {
		return arg, nil
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func loadContext(path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]any{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
