// Package jsparser parses JavaScript source into the AST subset the
// extraction pipeline analyzes, using tree-sitter with the javascript
// grammar. Comment capture and source-location tracking are always on.
package jsparser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/jsdocgen/jsdocgen/internal/ast"
)

// Result is one parsed source file: the ordered top-level nodes and the
// ordered list of documentation comments with their line spans.
type Result struct {
	Body     []*ast.Node
	Comments []ast.Comment
}

// Parser converts JavaScript source to the analyzed AST subset. Each Parse
// call creates its own tree-sitter parser, so a Parser is safe for
// concurrent use.
type Parser struct {
	lang *sitter.Language
}

// New creates a JavaScript parser.
func New() *Parser {
	return &Parser{lang: javascript.GetLanguage()}
}

// Parse parses source. Constructs outside the analyzed grammar are surfaced
// as opaque statements (or skipped, for expressions that cannot contain a
// function), so the downstream walker only ever sees node types it knows.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Result, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.lang)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("jsparser: %w", err)
	}
	defer tree.Close()

	c := &converter{source: source}
	result := &Result{Body: c.statements(tree.RootNode())}
	c.collectComments(tree.RootNode())
	result.Comments = c.comments
	return result, nil
}

type converter struct {
	source   []byte
	comments []ast.Comment
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.source[n.StartByte():n.EndByte()])
}

func (c *converter) span(n *sitter.Node, node *ast.Node) *ast.Node {
	node.Start = int(n.StartPoint().Row) + 1
	node.End = int(n.EndPoint().Row) + 1
	return node
}

// collectComments gathers every documentation block comment ("/**") in
// document order, wherever it appears in the tree.
func (c *converter) collectComments(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "comment" {
			text := c.text(child)
			if strings.HasPrefix(text, "/**") {
				c.comments = append(c.comments, ast.Comment{
					Text:  text,
					Start: int(child.StartPoint().Row) + 1,
					End:   int(child.EndPoint().Row) + 1,
				})
			}
			continue
		}
		c.collectComments(child)
	}
}

func (c *converter) statements(n *sitter.Node) []*ast.Node {
	var out []*ast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, c.statement(child))
	}
	return out
}

func (c *converter) statement(n *sitter.Node) *ast.Node {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return c.function(n, ast.FunctionDeclaration)
	case "statement_block":
		return c.span(n, &ast.Node{Type: ast.BlockStatement, List: c.statements(n)})
	case "expression_statement":
		return c.span(n, &ast.Node{
			Type: ast.ExpressionStatement,
			Expr: c.expression(n.NamedChild(0)),
		})
	case "variable_declaration", "lexical_declaration":
		decl := &ast.Node{Type: ast.VariableDeclaration}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "variable_declarator" {
				decl.Decls = append(decl.Decls, c.declarator(child))
			}
		}
		return c.span(n, decl)
	case "empty_statement":
		return c.span(n, &ast.Node{Type: ast.EmptyStatement})
	case "return_statement":
		return c.span(n, &ast.Node{Type: ast.ReturnStatement})
	default:
		// Control flow, classes, imports and the rest carry no
		// documentable declarations of their own; keep them opaque.
		return c.span(n, &ast.Node{Type: ast.EmptyStatement})
	}
}

func (c *converter) declarator(n *sitter.Node) *ast.Node {
	decl := &ast.Node{Type: ast.VariableDeclarator}
	if name := n.ChildByFieldName("name"); name != nil {
		decl.ID = c.expression(name)
	}
	if value := n.ChildByFieldName("value"); value != nil {
		decl.Init = c.expression(value)
	}
	return c.span(n, decl)
}

func (c *converter) function(n *sitter.Node, nodeType ast.NodeType) *ast.Node {
	fn := &ast.Node{Type: nodeType}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.ID = c.expression(name)
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			if param := c.expression(params.NamedChild(i)); param != nil {
				fn.Params = append(fn.Params, param)
			}
		}
	}
	if body := n.ChildByFieldName("body"); body != nil && body.Type() == "statement_block" {
		fn.Body = c.statement(body)
	}
	return c.span(n, fn)
}

// expression converts an expression node, or returns nil for expression kinds
// that cannot contain a function expression (literals, arithmetic, and so
// on); callers treat a nil child as absent.
func (c *converter) expression(n *sitter.Node) *ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "parenthesized_expression":
		return c.expression(n.NamedChild(0))
	case "function", "function_expression", "generator_function":
		return c.function(n, ast.FunctionExpression)
	case "arrow_function":
		return c.function(n, ast.FunctionExpression)
	case "assignment_expression":
		return c.span(n, &ast.Node{
			Type:  ast.AssignmentExpression,
			Left:  c.target(n.ChildByFieldName("left")),
			Right: c.expression(n.ChildByFieldName("right")),
		})
	case "call_expression":
		return c.span(n, &ast.Node{
			Type:   ast.CallExpression,
			Callee: c.expression(n.ChildByFieldName("function")),
		})
	case "object":
		obj := &ast.Node{Type: ast.ObjectExpression}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "pair" {
				obj.Props = append(obj.Props, c.pair(child))
			}
		}
		return c.span(n, obj)
	case "identifier", "property_identifier", "shorthand_property_identifier":
		return c.span(n, &ast.Node{Type: ast.Identifier, Name: c.text(n)})
	default:
		return nil
	}
}

// target converts an assignment's left-hand side. Member chains are preserved
// only here: the walker never descends into an assignment target, but the name
// resolver reads it to qualify the assigned function. Everywhere else a member
// access carries no documentable structure and converts to nil.
func (c *converter) target(n *sitter.Node) *ast.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "member_expression" {
		return c.span(n, &ast.Node{
			Type:   ast.MemberExpression,
			Object: c.target(n.ChildByFieldName("object")),
			Prop:   c.target(n.ChildByFieldName("property")),
		})
	}
	return c.expression(n)
}

func (c *converter) pair(n *sitter.Node) *ast.Node {
	prop := &ast.Node{
		Type:  ast.Property,
		Value: c.expression(n.ChildByFieldName("value")),
	}
	if key := n.ChildByFieldName("key"); key != nil {
		if key.Type() == "string" {
			// Quoted property keys act as identifiers for naming purposes.
			prop.Key = c.span(key, &ast.Node{Type: ast.Identifier, Name: unquote(c.text(key))})
		} else {
			prop.Key = c.expression(key)
		}
	}
	return c.span(n, prop)
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
