package texdoc

import (
	"fmt"
	"strings"

	"github.com/texkit/texkit/texarg"
)

// Environment is a named block with arguments and an ordered content list,
// rendered as a begin marker, a tab-indented content block, and an end
// marker. The environment exclusively owns its content list; removal always
// compacts the index space.
type Environment struct {
	command
	content []Node
}

// NewEnvironment creates an environment with the given required arguments.
func NewEnvironment(name string, args ...*texarg.Arg) *Environment {
	e := &Environment{command: command{name: name}}
	for _, arg := range args {
		e.AddArgument(arg)
	}
	return e
}

// NumContent returns the number of content items.
func (e *Environment) NumContent() int {
	return len(e.content)
}

// Content returns the content item at index i. The index must be in range.
func (e *Environment) Content(i int) Node {
	return e.content[i]
}

// AddContent appends content items in order.
func (e *Environment) AddContent(nodes ...Node) {
	e.content = append(e.content, nodes...)
}

// SetContent replaces the content item at index i.
func (e *Environment) SetContent(i int, node Node) error {
	if i < 0 || i >= len(e.content) {
		return fmt.Errorf("%w: cannot set content %d of %d", ErrIndexOutOfRange, i, len(e.content))
	}
	e.content[i] = node
	return nil
}

// InsertContent inserts a content item at index i, shifting later items
// right. An index equal to the current length appends.
func (e *Environment) InsertContent(i int, node Node) error {
	if i < 0 || i > len(e.content) {
		return fmt.Errorf("%w: cannot insert content %d of %d", ErrIndexOutOfRange, i, len(e.content))
	}
	e.content = append(e.content[:i], append([]Node{node}, e.content[i:]...)...)
	return nil
}

// RemoveContent removes the content item at index i, compacting the list.
func (e *Environment) RemoveContent(i int) error {
	if i < 0 || i >= len(e.content) {
		return fmt.Errorf("%w: cannot remove content %d of %d", ErrIndexOutOfRange, i, len(e.content))
	}
	e.content = append(e.content[:i], e.content[i+1:]...)
	return nil
}

// SetParent appends this environment to another environment's content.
func (e *Environment) SetParent(parent *Environment) {
	parent.AddContent(e)
}

func (e *Environment) String() string {
	begin := "\\begin{" + e.name + "}" + e.renderArguments()
	end := "\\end{" + e.name + "}"
	return begin + "\n" + indentBlock(renderContent(e.content)) + "\n" + end
}

// Container is an unnamed environment: it renders its content in order with
// no begin or end markers. Useful for grouping nodes that should emit flat.
type Container struct {
	Environment
}

// NewContainer creates a container holding the given content.
func NewContainer(nodes ...Node) *Container {
	c := &Container{}
	c.AddContent(nodes...)
	return c
}

func (c *Container) String() string {
	return renderContent(c.content)
}

// renderContent renders nodes joined by newlines.
func renderContent(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, node := range nodes {
		parts[i] = node.String()
	}
	return strings.Join(parts, "\n")
}

// indentBlock prefixes every line of a block with one tab.
func indentBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "\t" + line
	}
	return strings.Join(lines, "\n")
}
