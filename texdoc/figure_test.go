package texdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texkit/texkit/texarg"
)

func TestFigure_String(t *testing.T) {
	fig := NewFigure("plots/result.pdf")
	fig.SetWidth(texarg.Length{Value: 5, Unit: texarg.UnitCm})
	fig.SetCaption("A result")
	fig.SetLabel("fig:result")
	fig.SetPosition("htb")

	got := fig.String()
	assert.Contains(t, got, "\\begin{figure}[htb]")
	assert.Contains(t, got, "\\centering")
	assert.Contains(t, got, "\\includegraphics[width = 5cm]{plots/result.pdf}")
	assert.Contains(t, got, "\\caption{A result}")
	assert.Contains(t, got, "\\label{fig:result}")
	assert.Contains(t, got, "\\end{figure}")
}

func TestFigure_OptionsMerge(t *testing.T) {
	fig := NewFigure("img.png")
	require.NoError(t, fig.SetOptionsText("trim=1 2 3 4, clip"))
	fig.SetWidth(texarg.Length{Value: 0.5, Unit: texarg.UnitEm})

	// Width merges into the existing option list rather than replacing it.
	opts := fig.Options()
	assert.True(t, opts.Has("trim"))
	assert.True(t, opts.Has("clip"))
	assert.Equal(t, "0.5em", opts.Get("width").String())
}

func TestFigure_NoOptions(t *testing.T) {
	fig := NewFigure("img.png")
	fig.Center(false)

	got := fig.String()
	assert.Contains(t, got, "\\includegraphics{img.png}")
	assert.NotContains(t, got, "\\centering")
	assert.NotContains(t, got, "[")
}

func TestPreamble_String(t *testing.T) {
	p := NewPreamble("article")
	require.NoError(t, p.SetClassOptionsText("12pt, a4paper"))
	p.UsePackage("graphicx", nil)
	p.UsePackage("geometry", texarg.MustParse("margin=2cm"))
	p.Add(NewMacro("pagenumbering", texarg.MustParse("gobble")))

	expected := "\\documentclass[12pt, a4paper]{article}\n" +
		"\\usepackage{graphicx}\n" +
		"\\usepackage[margin = 2cm]{geometry}\n" +
		"\\pagenumbering{gobble}"
	assert.Equal(t, expected, p.String())
}
