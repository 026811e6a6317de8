package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFallback = MustParse("fallback: {{name}}")

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "developer-template.html"), []byte("<h1>{{name}}</h1>"), 0644)
	require.NoError(t, err)

	loader := FileLoader{Dir: dir}
	src, err := loader.Load("developer")
	require.NoError(t, err)
	assert.Equal(t, "<h1>{{name}}</h1>", src)

	_, err = loader.Load("missing")
	assert.Error(t, err)

	_, err = loader.Load("")
	assert.Error(t, err)
}

func TestEngine_RendersNamedTemplate(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "developer-template.html"), []byte("named: {{name}}"), 0644)
	require.NoError(t, err)

	engine := NewEngine(FileLoader{Dir: dir}, testFallback)
	got := engine.Render("developer", map[string]any{"name": "Jane"})
	assert.Equal(t, "named: Jane", got)
}

func TestEngine_FallsBackWhenTemplateMissing(t *testing.T) {
	engine := NewEngine(FileLoader{Dir: t.TempDir()}, testFallback)
	got := engine.Render("nonexistent", map[string]any{"name": "Jane"})
	assert.Equal(t, "fallback: Jane", got)
}

func TestEngine_FallsBackWhenTemplateMalformed(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "broken-template.html"), []byte("{{#if a}}never closed"), 0644)
	require.NoError(t, err)

	engine := NewEngine(FileLoader{Dir: dir}, testFallback)
	got := engine.Render("broken", map[string]any{"name": "Jane"})
	assert.Equal(t, "fallback: Jane", got)
}

func TestEngine_NilLoaderUsesFallback(t *testing.T) {
	engine := NewEngine(nil, testFallback)
	got := engine.Render("anything", map[string]any{"name": "Jane"})
	assert.Equal(t, "fallback: Jane", got)
}
