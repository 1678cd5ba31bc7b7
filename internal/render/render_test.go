package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdocgen/jsdocgen/internal/extract"
)

func TestMarkdownRender(t *testing.T) {
	out, err := NewMarkdown().Render("some *emphasis* here")
	require.NoError(t, err)
	assert.Equal(t, "<p>some <em>emphasis</em> here</p>", out)
}

func TestCompileHandlers(t *testing.T) {
	handlers, err := CompileHandlers([]HandlerConfig{
		{Pattern: `^\[`, Test: "deepEqual"},
	})
	require.NoError(t, err)
	require.Len(t, handlers, 1)
	assert.True(t, handlers[0].Pattern.MatchString("[1, 2]"))
	assert.Equal(t, "deepEqual", handlers[0].Test)
}

func TestCompileHandlersBadPattern(t *testing.T) {
	_, err := CompileHandlers([]HandlerConfig{{Pattern: "(", Test: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler pattern")
}

func sampleLibrary() *extract.LibraryInfo {
	fn := &extract.FunctionInfo{
		NameInfo:    extract.ParseName("Seq#map"),
		Description: "Maps a function over the sequence.",
		Params: []extract.ParamInfo{
			{Name: "fn", Type: "function(*):*", Description: "the mapping function"},
		},
		Returns: &extract.ReturnInfo{Type: "Seq", Description: "the mapped sequence"},
	}
	fn.HasSignature = true
	fn.Signature = "Seq.map = function(fn)"
	fn.Examples = extract.Examples("var s = seq([1]);\ns.map(inc) // => [2]")
	fn.Benchmarks = extract.Benchmarks("s.map(inc) // => map - lazy")

	functions := []*extract.FunctionInfo{fn}
	return &extract.LibraryInfo{
		Name:        "lazy.js",
		Description: "A lazy sequence library.",
		Source:      "lazy.js",
		Namespaces:  extract.BuildNamespaces(functions),
		Functions:   functions,
	}
}

func TestAnnotateExamples(t *testing.T) {
	lib := sampleLibrary()
	handlers, err := CompileHandlers([]HandlerConfig{
		{Pattern: `^'`, Test: "strictEqual"},
		{Pattern: `^\[`, Test: "deepEqual"},
	})
	require.NoError(t, err)

	AnnotateExamples(lib, handlers)

	ex := lib.Functions[0].Examples.List[0]
	assert.Equal(t, 1, ex.Handler)
	assert.Equal(t, "[2]", ex.Expected)
}

func TestAnnotateExamplesNoMatch(t *testing.T) {
	lib := sampleLibrary()
	handlers, err := CompileHandlers([]HandlerConfig{{Pattern: `^"`, Test: "strictEqual"}})
	require.NoError(t, err)

	AnnotateExamples(lib, handlers)
	assert.Equal(t, -1, lib.Functions[0].Examples.List[0].Handler)
}

func TestDocumentMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document(&buf, sampleLibrary(), "markdown"))

	out := buf.String()
	assert.Contains(t, out, "# lazy.js")
	assert.Contains(t, out, "## Seq")
	assert.Contains(t, out, "`Seq.map = function(fn)`")
	assert.Contains(t, out, "| `fn` | `function(*):*` | the mapping function |")
	assert.Contains(t, out, "**Returns** `Seq` the mapped sequence")
	assert.Contains(t, out, "var s = seq([1]);\ns.map(inc) // => [2]")
	assert.Contains(t, out, "**Benchmark: map**")
	assert.Contains(t, out, "- `s.map(inc)` (lazy)")
}

func TestDocumentHTML(t *testing.T) {
	lib := sampleLibrary()
	lib.Description = "<p>A <em>lazy</em> sequence library.</p>"

	var buf bytes.Buffer
	require.NoError(t, Document(&buf, lib, "html"))

	out := buf.String()
	assert.Contains(t, out, "<h1>lazy.js</h1>")
	// Pre-rendered descriptions stay unescaped.
	assert.Contains(t, out, "<div><p>A <em>lazy</em> sequence library.</p></div>")
	assert.Contains(t, out, `<article id="Seq-map">`)
	assert.Contains(t, out, "<code>Seq.map = function(fn)</code>")
}

func TestDocumentUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Document(&buf, sampleLibrary(), "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Index(&buf, []IndexEntry{
		{Slug: "lazy-js", Name: "lazy.js"},
	}))

	out := buf.String()
	assert.Contains(t, out, `href="/lazy-js"`)
	assert.Contains(t, out, "lazy.js")
}
