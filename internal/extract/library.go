package extract

import (
	"github.com/jsdocgen/jsdocgen/internal/ast"
)

// summarize scans all comments for the first doclet carrying a @fileOverview
// tag and derives the library name and description from it. A sibling @name
// tag supplies the name. Comments that fail to parse are skipped.
func (x *Extractor) summarize(comments []ast.Comment) (name, description string, err error) {
	for _, c := range comments {
		doclet, parseErr := x.comments.Parse(c.Text, true)
		if parseErr != nil {
			continue
		}
		overview := doclet.Tag("fileOverview")
		if overview == nil {
			continue
		}

		description, err = x.renderMarkdown(overview.Description)
		if err != nil {
			return "", "", err
		}
		if nameTag := doclet.Tag("name"); nameTag != nil {
			name = nameTag.Description
		}
		return name, description, nil
	}
	return "", "", nil
}
