package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	texttemplate "text/template"

	"github.com/jsdocgen/jsdocgen/internal/extract"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Document writes the rendered document for one library. Supported formats
// are "markdown" and "html"; JSON and YAML serialization happen in the CLI.
func Document(w io.Writer, lib *extract.LibraryInfo, format string) error {
	switch format {
	case "markdown":
		t, err := texttemplate.ParseFS(templateFS, "templates/doc.md.tmpl")
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return t.Execute(w, lib)
	case "html":
		t, err := template.New("doc.html.tmpl").
			Funcs(template.FuncMap{"safe": safeHTML}).
			ParseFS(templateFS, "templates/doc.html.tmpl")
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return t.Execute(w, lib)
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}

// Index writes an HTML index page linking the given libraries, keyed by the
// slugs they are served under.
func Index(w io.Writer, entries []IndexEntry) error {
	t, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return t.Execute(w, entries)
}

// IndexEntry is one row of the index page.
type IndexEntry struct {
	Slug string
	Name string
}

// safeHTML marks extractor output as pre-rendered markup. Descriptions pass
// through goldmark before they reach the template.
func safeHTML(s string) template.HTML {
	return template.HTML(s) // #nosec G203
}
