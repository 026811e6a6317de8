package template

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader supplies template source text by identifier. Load returns an error
// when the template cannot be found or read; the engine treats any load
// failure as "use the fallback".
type Loader interface {
	Load(name string) (string, error)
}

// FileLoader loads template source from <dir>/<name>-template.html, the
// layout the site's template directory uses.
type FileLoader struct {
	Dir string
}

// Load reads the named template file from the loader's directory.
func (l FileLoader) Load(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("template name is empty")
	}
	path := filepath.Join(l.Dir, name+"-template.html")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load template %q: %w", name, err)
	}
	return string(data), nil
}

// Engine renders named templates against a data context, falling back to a
// built-in template whenever the named one is missing or malformed. Render
// never fails: missing templates and missing data both degrade to well-defined
// output. An Engine is stateless across calls and safe for concurrent use.
type Engine struct {
	loader   Loader
	fallback *Template
}

// NewEngine creates an engine with the given loader and fallback template.
// The fallback must accept the same data shape as the named templates and is
// required; loader may be nil, in which case every render uses the fallback.
func NewEngine(loader Loader, fallback *Template) *Engine {
	return &Engine{loader: loader, fallback: fallback}
}

// Render expands the named template against data. Lookup or parse failures
// fall back to the built-in template silently; the result is always a complete
// rendered string.
func (e *Engine) Render(name string, data map[string]any) string {
	if tmpl := e.load(name); tmpl != nil {
		return tmpl.Execute(data)
	}
	return e.fallback.Execute(data)
}

func (e *Engine) load(name string) *Template {
	if e.loader == nil || name == "" {
		return nil
	}
	src, err := e.loader.Load(name)
	if err != nil {
		return nil
	}
	tmpl, err := Parse(src)
	if err != nil {
		return nil
	}
	return tmpl
}
