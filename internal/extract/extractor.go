package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsdocgen/jsdocgen/internal/ast"
	"github.com/jsdocgen/jsdocgen/internal/doctag"
)

// CommentParser parses one raw comment into a doclet. The unwrap flag strips
// comment delimiters before parsing.
type CommentParser interface {
	Parse(text string, unwrap bool) (*doctag.Doclet, error)
}

// Renderer renders Markdown text to markup. Link markers in the output are
// rewritten by the extractor afterwards.
type Renderer interface {
	Render(markdown string) (string, error)
}

// rawRenderer passes Markdown through untouched.
type rawRenderer struct{}

func (rawRenderer) Render(markdown string) (string, error) { return markdown, nil }

// Extractor runs the extraction pipeline for one AST + comment set per call.
// It is stateless across calls and safe for concurrent use as long as
// distinct calls operate on distinct ASTs (the walker assigns parent links on
// the nodes it visits).
type Extractor struct {
	comments CommentParser
	markdown Renderer
}

// New creates an Extractor. A nil renderer leaves Markdown unrendered.
func New(comments CommentParser, markdown Renderer) *Extractor {
	if markdown == nil {
		markdown = rawRenderer{}
	}
	return &Extractor{comments: comments, markdown: markdown}
}

// Extract produces the library documentation record for one parsed source
// file. Comments that precede no function, fail to parse, or parse to an
// empty doclet are dropped; an unknown node type or unformattable type
// expression aborts the whole pass.
func (x *Extractor) Extract(nodes []*ast.Node, comments []ast.Comment, source string) (*LibraryInfo, error) {
	byLine, err := functionsByLine(nodes)
	if err != nil {
		return nil, err
	}

	var functions []*FunctionInfo
	for _, c := range comments {
		targets := byLine[c.End+1]
		if len(targets) == 0 {
			continue
		}
		doclet, err := x.comments.Parse(c.Text, true)
		if err != nil || doclet.Description == "" {
			continue
		}
		for _, node := range targets {
			fn, err := x.functionInfo(node, doclet)
			if err != nil {
				return nil, err
			}
			functions = append(functions, fn)
		}
	}

	namespaces := BuildNamespaces(functions)

	name, description, err := x.summarize(comments)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = firstPopulatedNamespace(namespaces)
	}

	return &LibraryInfo{
		Name:        name,
		Description: description,
		Source:      source,
		Namespaces:  namespaces,
		Functions:   functions,
	}, nil
}

// functionsByLine walks the AST and indexes every function node by its start
// line. Multiple functions sharing a start line share the same key.
func functionsByLine(nodes []*ast.Node) (map[int][]*ast.Node, error) {
	byLine := make(map[int][]*ast.Node)
	err := ast.Walk(nodes, func(n *ast.Node) bool {
		if n.Type == ast.FunctionDeclaration || n.Type == ast.FunctionExpression {
			byLine[n.Start] = append(byLine[n.Start], n)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return byLine, nil
}

// functionInfo builds the documentation record for one matched (node, doclet)
// pair.
func (x *Extractor) functionInfo(node *ast.Node, doclet *doctag.Doclet) (*FunctionInfo, error) {
	info := &FunctionInfo{
		NameInfo:      ParseName(ast.NameOf(node)),
		IsConstructor: doclet.Has("constructor"),
		IsPublic:      doclet.Has("public"),
	}
	info.IsStatic = !strings.Contains(info.Name, "#")

	description, err := x.renderMarkdown(doclet.Description)
	if err != nil {
		return nil, err
	}
	info.Description = description

	for _, tag := range doclet.Tags {
		info.Tags = append(info.Tags, tag.Title)

		switch tag.Title {
		case "param":
			param, err := x.paramInfo(tag)
			if err != nil {
				return nil, err
			}
			info.Params = append(info.Params, param)
		case "returns":
			if info.Returns != nil {
				continue
			}
			formatted, err := formatTagType(tag)
			if err != nil {
				return nil, err
			}
			info.Returns = &ReturnInfo{Type: formatted, Description: tag.Description}
		case "examples":
			info.Examples = Examples(tag.Description)
		case "benchmarks":
			info.Benchmarks = Benchmarks(tag.Description)
		}
	}

	info.HasSignature = len(info.Params) > 0 || info.Returns != nil
	info.Signature = signature(info)
	return info, nil
}

func (x *Extractor) paramInfo(tag doctag.Tag) (ParamInfo, error) {
	formatted, err := formatTagType(tag)
	if err != nil {
		return ParamInfo{}, err
	}
	description, err := x.renderMarkdown(tag.Description)
	if err != nil {
		return ParamInfo{}, err
	}
	return ParamInfo{Name: tag.Name, Type: formatted, Description: description}, nil
}

func formatTagType(tag doctag.Tag) (string, error) {
	if tag.Type == nil {
		return "", nil
	}
	formatted, err := doctag.Format(tag.Type)
	if err != nil {
		return "", fmt.Errorf("extract: @%s %s: %w", tag.Title, tag.Name, err)
	}
	return formatted, nil
}

// signature renders the declaration form readers see in headings. Top-level
// names render as declarations, namespaced names as assignments.
func signature(info *FunctionInfo) string {
	names := make([]string, 0, len(info.Params))
	for _, p := range info.Params {
		names = append(names, p.Name)
	}
	args := strings.Join(names, ", ")
	if info.Name == info.ShortName {
		return "function " + info.ShortName + "(" + args + ")"
	}
	return info.Namespace + "." + info.ShortName + " = function(" + args + ")"
}

// linkPattern matches internal cross-reference markers of the form
// "{@link Some.Name#member}".
var linkPattern = regexp.MustCompile(`\{@link ([^}]+)\}`)

// renderMarkdown renders description text and rewrites {@link Name} markers
// into hyperlinks anchored on the name's identifier form.
func (x *Extractor) renderMarkdown(text string) (string, error) {
	rendered, err := x.markdown.Render(text)
	if err != nil {
		return "", fmt.Errorf("extract: render markdown: %w", err)
	}
	return RewriteLinks(rendered), nil
}

// RewriteLinks replaces {@link Name} markers with anchor markup. The anchor
// target is the name with "." and "#" replaced by "-".
func RewriteLinks(markup string) string {
	return linkPattern.ReplaceAllStringFunc(markup, func(m string) string {
		name := linkPattern.FindStringSubmatch(m)[1]
		return `<a href="#` + identifierFor(name) + `">` + name + `</a>`
	})
}
