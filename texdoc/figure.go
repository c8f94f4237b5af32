package texdoc

import (
	"github.com/texkit/texkit/texarg"
)

// Figure is a content node rendering an included graphic inside a figure
// float. Width and options feed the includegraphics argument list through
// the texarg merge algebra; captions and labels are explicit only.
type Figure struct {
	path     string
	options  *texarg.Arg
	caption  string
	label    string
	position string
	centered bool
}

// NewFigure creates a figure for the given graphics path.
func NewFigure(path string) *Figure {
	return &Figure{path: path, options: texarg.NewArg(), centered: true}
}

// Path returns the graphics path.
func (f *Figure) Path() string {
	return f.path
}

// SetPath replaces the graphics path.
func (f *Figure) SetPath(path string) {
	f.path = path
}

// SetWidth sets the graphic width option.
func (f *Figure) SetWidth(w texarg.Length) {
	f.options.UpdateKey("width", texarg.MustParse(w.String()))
}

// SetOptionsText merges raw option text into the includegraphics options.
func (f *Figure) SetOptionsText(text string) error {
	return f.options.UpdateText(text)
}

// Options returns the includegraphics option list.
func (f *Figure) Options() *texarg.Arg {
	return f.options
}

// SetCaption sets an explicit caption.
func (f *Figure) SetCaption(caption string) {
	f.caption = caption
}

// SetLabel sets an explicit label.
func (f *Figure) SetLabel(label string) {
	f.label = label
}

// SetPosition sets an explicit float position specifier.
func (f *Figure) SetPosition(position string) {
	f.position = position
}

// Center controls the centering macro inside the float.
func (f *Figure) Center(centered bool) {
	f.centered = centered
}

func (f *Figure) String() string {
	include := NewMacro("includegraphics")
	if !f.options.IsEmpty() {
		include.AddOptionalArgument(f.options)
	}
	include.AddArgument(texarg.MustParse(f.path))

	env := NewEnvironment("figure")
	if f.position != "" {
		env.AddOptionalArgument(texarg.MustParse(f.position))
	}
	if f.centered {
		env.AddContent(NewMacro("centering"))
	}
	env.AddContent(include)
	if f.caption != "" {
		env.AddContent(NewMacro("caption", texarg.MustParse(f.caption)))
	}
	if f.label != "" {
		env.AddContent(NewMacro("label", texarg.MustParse(f.label)))
	}
	return env.String()
}
