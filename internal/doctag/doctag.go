// Package doctag parses documentation comments into doclets: an overall
// description followed by an ordered sequence of @tags, each with an optional
// type expression, name and description.
package doctag

import (
	"fmt"
	"strings"
)

// Doclet is the parsed form of one documentation comment.
type Doclet struct {
	Description string
	Tags        []Tag
}

// Tag is one @directive entry in a doclet.
type Tag struct {
	Title       string
	Name        string
	Type        Expr
	Description string
}

// Tag returns the first tag with the given title, or nil.
func (d *Doclet) Tag(title string) *Tag {
	for i := range d.Tags {
		if d.Tags[i].Title == title {
			return &d.Tags[i]
		}
	}
	return nil
}

// Has reports whether the doclet carries a tag with the given title.
func (d *Doclet) Has(title string) bool {
	return d.Tag(title) != nil
}

// Parser parses raw comment text into doclets. It implements the comment
// parsing capability the extraction pipeline is configured with.
type Parser struct{}

// tagsWithName lists the tag titles whose first token after the type
// expression is an identifier rather than description text.
var tagsWithName = map[string]bool{
	"param":    true,
	"property": true,
}

// Parse parses one comment's raw text. When unwrap is set the surrounding
// comment delimiters and per-line "*" gutters are stripped first.
func (Parser) Parse(text string, unwrap bool) (*Doclet, error) {
	if unwrap {
		text = Unwrap(text)
	}

	doclet := &Doclet{}
	lines := strings.Split(text, "\n")

	var desc []string
	var current *Tag
	var contLines []string

	flush := func() {
		if current != nil {
			// Line breaks in the body are preserved: the examples and
			// benchmarks DSL is line-oriented.
			if len(contLines) > 0 {
				if current.Description != "" {
					contLines = append([]string{current.Description}, contLines...)
				}
				current.Description = strings.Join(contLines, "\n")
			}
			current.Description = strings.TrimSpace(current.Description)
			doclet.Tags = append(doclet.Tags, *current)
			current = nil
			contLines = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			flush()
			tag, err := parseTagLine(trimmed)
			if err != nil {
				return nil, err
			}
			current = tag
			continue
		}
		if current != nil {
			contLines = append(contLines, line)
			continue
		}
		desc = append(desc, line)
	}
	flush()

	doclet.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	return doclet, nil
}

func parseTagLine(line string) (*Tag, error) {
	rest := strings.TrimPrefix(line, "@")
	title := rest
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		title, rest = rest[:i], strings.TrimSpace(rest[i+1:])
	} else {
		rest = ""
	}
	if title == "" {
		return nil, fmt.Errorf("doctag: empty tag title in %q", line)
	}

	tag := &Tag{Title: title}

	if strings.HasPrefix(rest, "{") {
		typeText, remainder, err := splitTypeExpression(rest)
		if err != nil {
			return nil, err
		}
		expr, err := ParseType(typeText)
		if err != nil {
			return nil, err
		}
		tag.Type = expr
		rest = remainder
	}

	if tagsWithName[title] {
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			tag.Name, rest = rest[:i], strings.TrimSpace(rest[i+1:])
		} else {
			tag.Name, rest = rest, ""
		}
	}

	tag.Description = rest
	return tag, nil
}

// splitTypeExpression splits "{...} remainder" at the matching close brace.
// Braces nest for record types.
func splitTypeExpression(s string) (typeText, remainder string, err error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], strings.TrimSpace(s[i+1:]), nil
			}
		}
	}
	return "", "", fmt.Errorf("doctag: unterminated type expression in %q", s)
}

// Unwrap strips comment delimiters ("/**", "*/") and the leading "*" gutter
// from each line.
func Unwrap(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = strings.TrimPrefix(trimmed, "*")
			trimmed = strings.TrimPrefix(trimmed, " ")
			lines[i] = trimmed
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
