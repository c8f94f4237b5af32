package texdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texkit/texkit/texarg"
)

func TestEnvironment_String(t *testing.T) {
	env := NewEnvironment("center")
	env.AddContent(Text("hello"))

	expected := "\\begin{center}\n\thello\n\\end{center}"
	assert.Equal(t, expected, env.String())
}

func TestEnvironment_WithArguments(t *testing.T) {
	env := NewEnvironment("minipage")
	env.AddOptionalArgument(texarg.MustParse("t"))
	env.AddArgument(texarg.MustParse("0.5\\textwidth"))
	env.AddContent(Text("content"))

	expected := "\\begin{minipage}[t]{0.5\\textwidth}\n\tcontent\n\\end{minipage}"
	assert.Equal(t, expected, env.String())
}

func TestEnvironment_Nested(t *testing.T) {
	outer := NewEnvironment("outer")
	inner := NewEnvironment("inner")
	inner.AddContent(Text("deep"))
	inner.SetParent(outer)

	expected := "\\begin{outer}\n" +
		"\t\\begin{inner}\n" +
		"\t\tdeep\n" +
		"\t\\end{inner}\n" +
		"\\end{outer}"
	assert.Equal(t, expected, outer.String())
}

func TestEnvironment_ContentMutators(t *testing.T) {
	env := NewEnvironment("e")
	env.AddContent(Text("a"), Text("b"))
	require.Equal(t, 2, env.NumContent())

	require.NoError(t, env.SetContent(0, Text("A")))
	require.NoError(t, env.InsertContent(1, Text("mid")))
	require.NoError(t, env.RemoveContent(2))

	assert.Equal(t, "A", env.Content(0).String())
	assert.Equal(t, "mid", env.Content(1).String())
	assert.Equal(t, 2, env.NumContent())
}

func TestEnvironment_ContentIndexChecks(t *testing.T) {
	env := NewEnvironment("e")
	env.AddContent(Text("only"))

	assert.ErrorIs(t, env.SetContent(1, Text("x")), ErrIndexOutOfRange)
	assert.ErrorIs(t, env.InsertContent(2, Text("x")), ErrIndexOutOfRange)
	assert.ErrorIs(t, env.RemoveContent(-1), ErrIndexOutOfRange)
	assert.Equal(t, 1, env.NumContent())
}

func TestContainer_RendersContentOnly(t *testing.T) {
	c := NewContainer(Text("one"), NewMacro("relax"), Text("two"))
	assert.Equal(t, "one\n\\relax\ntwo", c.String())
}

func TestItemize_String(t *testing.T) {
	l := NewItemize(Text("first"), Text("second"))

	expected := "\\begin{itemize}\n" +
		"\t\\item first\n" +
		"\t\\item second\n" +
		"\\end{itemize}"
	assert.Equal(t, expected, l.String())
}

func TestItemize_Nested(t *testing.T) {
	l := NewItemize(Text("top"))
	l.AddNested(Text("sub"))

	// A nested list renders without its own \item marker.
	expected := "\\begin{itemize}\n" +
		"\t\\item top\n" +
		"\t\\begin{itemize}\n" +
		"\t\t\\item sub\n" +
		"\t\\end{itemize}\n" +
		"\\end{itemize}"
	assert.Equal(t, expected, l.String())
}

func TestEnumerate_String(t *testing.T) {
	l := NewEnumerate(Text("one"))
	SetListOptions(&l.Environment, texarg.MustParse("label=\\alph*"))

	got := l.String()
	assert.Contains(t, got, "\\begin{enumerate}[label = \\alph*]")
	assert.Contains(t, got, "\\item one")
	assert.Contains(t, got, "\\end{enumerate}")
}
