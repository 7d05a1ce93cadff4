package template

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// Engine handles template loading and rendering.
type Engine struct {
	templates  map[string]*template.Template
	missingKey string
}

// New creates a new template engine. missingKey is passed to the
// text/template "missingkey" option; an empty value means "default".
func New(missingKey string) *Engine {
	if missingKey == "" {
		missingKey = "default"
	}
	return &Engine{
		templates:  make(map[string]*template.Template),
		missingKey: missingKey,
	}
}

// LoadFile loads a template from a file path.
func (e *Engine) LoadFile(name, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	return e.LoadString(name, string(content))
}

// LoadString loads a template from a string.
func (e *Engine) LoadString(name, content string) error {
	tmpl, err := e.parse(name, content)
	if err != nil {
		return err
	}

	e.templates[name] = tmpl
	return nil
}

// Render renders a template with the given data.
func (e *Engine) Render(name string, data any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}

	return execute(tmpl, data)
}

// RenderString parses and renders a template string in one step.
func (e *Engine) RenderString(content string, data any) (string, error) {
	tmpl, err := e.parse("inline", content)
	if err != nil {
		return "", err
	}

	return execute(tmpl, data)
}

func (e *Engine) parse(name, content string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Funcs(FuncMap()).
		Option("missingkey=" + e.missingKey).
		Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
