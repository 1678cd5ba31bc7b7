package doctag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrapped = `/**
 * Creates a sequence from x.
 *
 * Wraps {@link Lazy.Sequence}.
 *
 * @public
 * @param {string} x the value to wrap
 * @returns {boolean} whether wrapping succeeded
 */`

func TestParseWrappedComment(t *testing.T) {
	doclet, err := Parser{}.Parse(wrapped, true)
	require.NoError(t, err)

	assert.Equal(t, "Creates a sequence from x.\n\nWraps {@link Lazy.Sequence}.", doclet.Description)
	require.Len(t, doclet.Tags, 3)

	assert.Equal(t, "public", doclet.Tags[0].Title)

	param := doclet.Tags[1]
	assert.Equal(t, "param", param.Title)
	assert.Equal(t, "x", param.Name)
	assert.Equal(t, NameExpr{Name: "string"}, param.Type)
	assert.Equal(t, "the value to wrap", param.Description)

	returns := doclet.Tags[2]
	assert.Equal(t, "returns", returns.Title)
	assert.Equal(t, "", returns.Name)
	assert.Equal(t, NameExpr{Name: "boolean"}, returns.Type)
	assert.Equal(t, "whether wrapping succeeded", returns.Description)
}

func TestParseMultilineTagBody(t *testing.T) {
	text := "Maps a function over a sequence.\n" +
		"\n" +
		"@examples\n" +
		"var inc = function(x) { return x + 1; };\n" +
		"\n" +
		"map([1, 2], inc) // => [2, 3]\n" +
		"map([], inc)     // => []"

	doclet, err := Parser{}.Parse(text, false)
	require.NoError(t, err)

	require.Len(t, doclet.Tags, 1)
	tag := doclet.Tags[0]
	assert.Equal(t, "examples", tag.Title)
	assert.Equal(t,
		"var inc = function(x) { return x + 1; };\n\nmap([1, 2], inc) // => [2, 3]\nmap([], inc)     // => []",
		tag.Description)
}

func TestParseEmptyDescription(t *testing.T) {
	doclet, err := Parser{}.Parse("/** @param {string} x */", true)
	require.NoError(t, err)
	assert.Equal(t, "", doclet.Description)
	require.Len(t, doclet.Tags, 1)
}

func TestParseBadTypeExpressionFails(t *testing.T) {
	_, err := Parser{}.Parse("desc\n@param {Array.<string x", false)
	assert.Error(t, err)
}

func TestTagLookup(t *testing.T) {
	doclet, err := Parser{}.Parse("Overview text.\n@fileOverview A lazy library.\n@name Lazy.js", false)
	require.NoError(t, err)

	assert.True(t, doclet.Has("fileOverview"))
	assert.False(t, doclet.Has("constructor"))

	name := doclet.Tag("name")
	require.NotNil(t, name)
	assert.Equal(t, "Lazy.js", name.Description)
}

func TestUnwrap(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"single line", "/** hello */", "hello"},
		{"gutter", "/**\n * a\n * b\n */", "a\nb"},
		{"no gutter", "/*\nplain\n*/", "plain"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Unwrap(c.input))
		})
	}
}
