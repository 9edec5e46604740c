package tmpl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/press/internal/adapters/tmpl"
	"go.trai.ch/press/internal/core/domain"
)

func writeTemplate(t *testing.T, root, rel, content string) domain.PagePath {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return domain.NewPagePath(rel)
}

func TestEngine_Render(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "templates/default.html",
		"<html><h1>{{.title}}</h1><main>{{.body}}</main></html>")

	engine := tmpl.NewEngine(root)

	out, err := engine.Render(path, domain.Context{
		"title": "Hello",
		"body":  "<p>already rendered html</p>",
	})
	require.NoError(t, err)

	// Body html passes through unescaped; wrapping happens on trusted input
	assert.Equal(t, "<html><h1>Hello</h1><main><p>already rendered html</p></main></html>", out)
}

func TestEngine_Render_FullPageGolden(t *testing.T) {
	root := t.TempDir()
	layout := writeTemplate(t, root, "templates/layout.html", `<!DOCTYPE html>
<html>
<head>
  <title>{{.title}} | {{.site}}</title>
  <link rel="canonical" href="{{.url}}">
</head>
<body>
<article>
{{.body}}
</article>
</body>
</html>
`)

	engine := tmpl.NewEngine(root)

	out, err := engine.Render(layout, domain.Context{
		"title": "Release Notes",
		"site":  "example.test",
		"url":   "notes/release.html",
		"body":  "<p>What changed this cycle.</p>",
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "layout_page", []byte(out))
}

func TestEngine_Render_MissingKeyRendersEmpty(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "t.html", "[{{.missing}}]")

	engine := tmpl.NewEngine(root)

	out, err := engine.Render(path, domain.Context{})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestEngine_Render_MissingTemplate(t *testing.T) {
	engine := tmpl.NewEngine(t.TempDir())

	_, err := engine.Render(domain.NewPagePath("nope.html"), domain.Context{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template")
}

func TestEngine_Render_ParseError(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "bad.html", "{{.unclosed")

	engine := tmpl.NewEngine(root)

	_, err := engine.Render(path, domain.Context{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestEngine_Render_ExecuteError(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "deep.html", "{{.title.nope}}")

	engine := tmpl.NewEngine(root)

	_, err := engine.Render(path, domain.Context{"title": "plain string"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestEngine_CacheAndInvalidate(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "t.html", "v1: {{.body}}")

	engine := tmpl.NewEngine(root)

	out, err := engine.Render(path, domain.Context{"body": "x"})
	require.NoError(t, err)
	assert.Equal(t, "v1: x", out)

	// Rewrite the file; the cached parse is still served
	writeTemplate(t, root, "t.html", "v2: {{.body}}")

	out, err = engine.Render(path, domain.Context{"body": "x"})
	require.NoError(t, err)
	assert.Equal(t, "v1: x", out)

	// Invalidation forces a re-parse
	engine.Invalidate(path)

	out, err = engine.Render(path, domain.Context{"body": "x"})
	require.NoError(t, err)
	assert.Equal(t, "v2: x", out)
}
