package texdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texkit/texkit/texarg"
)

func TestMacro_String(t *testing.T) {
	m := NewMacro("includegraphics")
	m.AddOptionalArgument(texarg.MustParse("width=5cm"))
	m.AddArgument(texarg.MustParse("plot.pdf"))

	// Slots render in declaration order, braced or bracketed per tag.
	assert.Equal(t, `\includegraphics[width = 5cm]{plot.pdf}`, m.String())
}

func TestMacro_NoArguments(t *testing.T) {
	assert.Equal(t, `\centering`, NewMacro("centering").String())
}

func TestCommand_ArgumentMutators(t *testing.T) {
	m := NewMacro("cmd", texarg.MustParse("a"), texarg.MustParse("b"))
	require.Equal(t, 2, m.NumArguments())

	require.NoError(t, m.SetArgument(1, texarg.MustParse("B"), false))
	assert.Equal(t, `\cmd{a}{B}`, m.String())

	require.NoError(t, m.InsertArgument(1, texarg.MustParse("mid"), true))
	assert.Equal(t, `\cmd{a}[mid]{B}`, m.String())

	// Insert at the current length appends.
	require.NoError(t, m.InsertArgument(3, texarg.MustParse("tail"), false))
	assert.Equal(t, `\cmd{a}[mid]{B}{tail}`, m.String())

	require.NoError(t, m.RemoveArgument(0))
	assert.Equal(t, `\cmd[mid]{B}{tail}`, m.String())
}

func TestCommand_IndexChecksBeforeMutation(t *testing.T) {
	m := NewMacro("cmd", texarg.MustParse("a"))

	assert.ErrorIs(t, m.SetArgument(1, texarg.MustParse("x"), false), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.SetArgument(-1, texarg.MustParse("x"), false), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.InsertArgument(2, texarg.MustParse("x"), false), ErrIndexOutOfRange)
	assert.ErrorIs(t, m.RemoveArgument(1), ErrIndexOutOfRange)

	// A failed mutation leaves the argument list untouched.
	assert.Equal(t, `\cmd{a}`, m.String())
}

func TestCommand_AddArgumentText(t *testing.T) {
	m := NewMacro("cmd")
	require.NoError(t, m.AddArgumentText("k=v, flag", false))
	assert.Equal(t, `\cmd{k = v, flag}`, m.String())

	assert.Error(t, m.AddArgumentText("broken}", false))
	assert.Equal(t, 1, m.NumArguments())
}

func TestCommand_NilArgumentBecomesEmpty(t *testing.T) {
	m := NewMacro("cmd")
	m.AddArgument(nil)
	assert.Equal(t, `\cmd{}`, m.String())
}
