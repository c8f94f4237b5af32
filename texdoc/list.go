package texdoc

import (
	"strings"

	"github.com/texkit/texkit/texarg"
)

// Itemize is an unordered list environment. Each content item is rendered
// behind an \item marker; nested Itemize or Enumerate content renders as a
// nested list environment without its own marker.
type Itemize struct {
	Environment
}

// NewItemize creates an itemize environment with the given items.
func NewItemize(items ...Node) *Itemize {
	l := &Itemize{Environment: Environment{command: command{name: "itemize"}}}
	l.AddContent(items...)
	return l
}

// AddNested appends the items as a nested list of the same kind.
func (l *Itemize) AddNested(items ...Node) {
	l.AddContent(NewItemize(items...))
}

func (l *Itemize) String() string {
	return renderList(&l.Environment)
}

// Enumerate is an ordered list environment with Itemize's rendering rules.
type Enumerate struct {
	Environment
}

// NewEnumerate creates an enumerate environment with the given items.
func NewEnumerate(items ...Node) *Enumerate {
	l := &Enumerate{Environment: Environment{command: command{name: "enumerate"}}}
	l.AddContent(items...)
	return l
}

// AddNested appends the items as a nested list of the same kind.
func (l *Enumerate) AddNested(items ...Node) {
	l.AddContent(NewEnumerate(items...))
}

func (l *Enumerate) String() string {
	return renderList(&l.Environment)
}

// SetListOptions sets a list environment's optional argument (e.g. label or
// spacing options from an enumitem-style package).
func SetListOptions(e *Environment, opts *texarg.Arg) {
	if e.NumArguments() == 0 {
		e.AddOptionalArgument(opts)
		return
	}
	// Slot 0 exists, so the bounds check cannot fail.
	_ = e.SetArgument(0, opts, true)
}

func renderList(e *Environment) string {
	begin := "\\begin{" + e.name + "}" + e.renderArguments()
	end := "\\end{" + e.name + "}"

	parts := make([]string, len(e.content))
	for i, node := range e.content {
		switch node.(type) {
		case *Itemize, *Enumerate:
			parts[i] = node.String()
		default:
			parts[i] = "\\item " + node.String()
		}
	}

	return begin + "\n" + indentBlock(strings.Join(parts, "\n")) + "\n" + end
}
