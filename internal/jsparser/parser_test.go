package jsparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdocgen/jsdocgen/internal/ast"
	"github.com/jsdocgen/jsdocgen/internal/doctag"
	"github.com/jsdocgen/jsdocgen/internal/extract"
)

func parse(t *testing.T, source string) *Result {
	t.Helper()
	result, err := New().Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	return result
}

func TestParseFunctionDeclaration(t *testing.T) {
	result := parse(t, "/**\n * Checks x.\n */\nfunction foo(x, y) {}\n")

	require.Len(t, result.Body, 1)
	fn := result.Body[0]
	assert.Equal(t, ast.FunctionDeclaration, fn.Type)
	assert.Equal(t, 4, fn.Start)
	require.NotNil(t, fn.ID)
	assert.Equal(t, "foo", fn.ID.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "x", fn.Params[0].Name)
	require.NotNil(t, fn.Body)
	assert.Equal(t, ast.BlockStatement, fn.Body.Type)

	require.Len(t, result.Comments, 1)
	comment := result.Comments[0]
	assert.Equal(t, 1, comment.Start)
	assert.Equal(t, 3, comment.End)
	assert.Contains(t, comment.Text, "Checks x.")
}

func TestParseKeepsOnlyDocComments(t *testing.T) {
	result := parse(t, "// line comment\n/* plain block */\n/** doc */\nfunction foo() {}\n")

	require.Len(t, result.Comments, 1)
	assert.Equal(t, "/** doc */", result.Comments[0].Text)
}

func TestParsePrototypeAssignment(t *testing.T) {
	result := parse(t, "Seq.prototype.map = function(fn) {};\n")

	require.Len(t, result.Body, 1)
	stmt := result.Body[0]
	assert.Equal(t, ast.ExpressionStatement, stmt.Type)
	require.NotNil(t, stmt.Expr)
	assert.Equal(t, ast.AssignmentExpression, stmt.Expr.Type)

	require.NoError(t, ast.Walk(result.Body, func(*ast.Node) bool { return true }))
	assert.Equal(t, "Seq#map", ast.NameOf(stmt.Expr.Right))
}

func TestParseObjectLiteral(t *testing.T) {
	result := parse(t, "var utils = { each: function(fn) {}, 'map': function(fn) {} };\n")

	require.Len(t, result.Body, 1)
	decl := result.Body[0]
	assert.Equal(t, ast.VariableDeclaration, decl.Type)
	require.Len(t, decl.Decls, 1)

	obj := decl.Decls[0].Init
	require.NotNil(t, obj)
	assert.Equal(t, ast.ObjectExpression, obj.Type)
	require.Len(t, obj.Props, 2)
	assert.Equal(t, "each", obj.Props[0].Key.Name)
	// Quoted keys unquote to plain identifiers.
	assert.Equal(t, "map", obj.Props[1].Key.Name)
	assert.Equal(t, ast.FunctionExpression, obj.Props[0].Value.Type)
}

func TestParseIIFE(t *testing.T) {
	result := parse(t, "(function() {\n  function inner() {}\n})();\n")

	var types []ast.NodeType
	require.NoError(t, ast.Walk(result.Body, func(n *ast.Node) bool {
		types = append(types, n.Type)
		return true
	}))
	assert.Contains(t, types, ast.CallExpression)
	assert.Contains(t, types, ast.FunctionDeclaration)
}

// Statements outside the analyzed grammar come back opaque so the walker
// never fails on real-world source.
func TestParseUnsupportedStatementsAreOpaque(t *testing.T) {
	result := parse(t, "if (x) { y(); }\nclass Foo {}\nfor (;;) {}\n")

	require.Len(t, result.Body, 3)
	for _, stmt := range result.Body {
		assert.Equal(t, ast.EmptyStatement, stmt.Type)
	}
	require.NoError(t, ast.Walk(result.Body, func(*ast.Node) bool { return true }))
}

// Member accesses in value position carry no documentable structure; they
// must convert to something the walker accepts rather than abort extraction.
func TestParseMemberAccessInValuePosition(t *testing.T) {
	source := "/**\n" +
		" * Builds a bounded cache.\n" +
		" */\n" +
		"function Cache(options) {\n" +
		"  this.limit = options.limit;\n" +
		"  options.onCreate;\n" +
		"}\n"
	result := parse(t, source)

	lib, err := extract.New(doctag.Parser{}, nil).Extract(result.Body, result.Comments, "cache.js")
	require.NoError(t, err)
	require.Len(t, lib.Functions, 1)
	assert.Equal(t, "Cache", lib.Functions[0].Name)
}

func TestParseBareMemberAssignment(t *testing.T) {
	result := parse(t, "a = b.c;\n")

	require.NoError(t, ast.Walk(result.Body, func(*ast.Node) bool { return true }))
	require.Len(t, result.Body, 1)
	assign := result.Body[0].Expr
	require.NotNil(t, assign)
	assert.Equal(t, "a", ast.NameOf(assign))
	// The right-hand member access is absent, not an unknown node.
	assert.Nil(t, assign.Right)
}

func TestParseCommentInsideFunction(t *testing.T) {
	source := "(function() {\n" +
		"  /** Inner doc. */\n" +
		"  function inner() {}\n" +
		"})();\n"
	result := parse(t, source)

	require.Len(t, result.Comments, 1)
	assert.Equal(t, 2, result.Comments[0].Start)
}

func TestParseThenExtract(t *testing.T) {
	source := "/**\n" +
		" * Checks x.\n" +
		" * @param {string} x the value\n" +
		" * @returns {boolean} the verdict\n" +
		" */\n" +
		"function foo(x) {}\n"
	result := parse(t, source)

	lib, err := extract.New(doctag.Parser{}, nil).Extract(result.Body, result.Comments, "lib.js")
	require.NoError(t, err)

	require.Len(t, lib.Functions, 1)
	fn := lib.Functions[0]
	assert.Equal(t, "foo", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "string", fn.Params[0].Type)
	require.NotNil(t, fn.Returns)
	assert.Equal(t, "boolean", fn.Returns.Type)
	assert.Equal(t, "function foo(x)", fn.Signature)
}
