package texdoc

import "github.com/texkit/texkit/texarg"

// Macro is a named markup command with ordered required and optional
// arguments, rendered as \name followed by each argument in declaration
// order.
type Macro struct {
	command
}

// NewMacro creates a macro with the given required arguments.
func NewMacro(name string, args ...*texarg.Arg) *Macro {
	m := &Macro{command: command{name: name}}
	for _, arg := range args {
		m.AddArgument(arg)
	}
	return m
}

func (m *Macro) String() string {
	return "\\" + m.name + m.renderArguments()
}
