package texdoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/texkit/texkit/texarg"
)

// ErrIndexOutOfRange reports a positional mutation beyond the current
// argument or content list length. The failing call leaves the node
// unmodified.
var ErrIndexOutOfRange = errors.New("texdoc: index out of range")

// Node is any renderable piece of document content.
type Node interface {
	String() string
}

// Text is a raw markup fragment used verbatim as content.
type Text string

func (t Text) String() string {
	return string(t)
}

// command holds the name and ordered argument slots shared by Macro and
// Environment. Each slot is a texarg.Arg tagged required or optional.
type command struct {
	name     string
	args     []*texarg.Arg
	optional []bool
}

// Name returns the command name.
func (c *command) Name() string {
	return c.name
}

// SetName replaces the command name.
func (c *command) SetName(name string) {
	c.name = name
}

// NumArguments returns the number of argument slots.
func (c *command) NumArguments() int {
	return len(c.args)
}

// Argument returns the argument at slot i. The index must be in range.
func (c *command) Argument(i int) *texarg.Arg {
	return c.args[i]
}

// AddArgument appends a required argument slot.
func (c *command) AddArgument(arg *texarg.Arg) {
	c.appendArgument(arg, false)
}

// AddOptionalArgument appends an optional (square-bracketed) argument slot.
func (c *command) AddOptionalArgument(arg *texarg.Arg) {
	c.appendArgument(arg, true)
}

// AddArgumentText parses raw argument text and appends it as a slot.
func (c *command) AddArgumentText(text string, optional bool) error {
	arg, err := texarg.Parse(text)
	if err != nil {
		return err
	}
	c.appendArgument(arg, optional)
	return nil
}

func (c *command) appendArgument(arg *texarg.Arg, optional bool) {
	if arg == nil {
		arg = texarg.NewArg()
	}
	c.args = append(c.args, arg)
	c.optional = append(c.optional, optional)
}

// SetArgument replaces the argument at slot i.
func (c *command) SetArgument(i int, arg *texarg.Arg, optional bool) error {
	if i < 0 || i >= len(c.args) {
		return fmt.Errorf("%w: cannot set argument %d of %d", ErrIndexOutOfRange, i, len(c.args))
	}
	if arg == nil {
		arg = texarg.NewArg()
	}
	c.args[i] = arg
	c.optional[i] = optional
	return nil
}

// InsertArgument inserts an argument at slot i, shifting later slots right.
// An index equal to the current length appends.
func (c *command) InsertArgument(i int, arg *texarg.Arg, optional bool) error {
	if i < 0 || i > len(c.args) {
		return fmt.Errorf("%w: cannot insert argument %d of %d", ErrIndexOutOfRange, i, len(c.args))
	}
	if arg == nil {
		arg = texarg.NewArg()
	}
	c.args = append(c.args[:i], append([]*texarg.Arg{arg}, c.args[i:]...)...)
	c.optional = append(c.optional[:i], append([]bool{optional}, c.optional[i:]...)...)
	return nil
}

// RemoveArgument removes the argument at slot i, compacting the list.
func (c *command) RemoveArgument(i int) error {
	if i < 0 || i >= len(c.args) {
		return fmt.Errorf("%w: cannot remove argument %d of %d", ErrIndexOutOfRange, i, len(c.args))
	}
	c.args = append(c.args[:i], c.args[i+1:]...)
	c.optional = append(c.optional[:i], c.optional[i+1:]...)
	return nil
}

// renderArguments renders each slot in order, braced or square-bracketed
// per its tag.
func (c *command) renderArguments() string {
	var sb strings.Builder
	for i, arg := range c.args {
		if c.optional[i] {
			sb.WriteString("[")
			sb.WriteString(arg.String())
			sb.WriteString("]")
		} else {
			sb.WriteString("{")
			sb.WriteString(arg.String())
			sb.WriteString("}")
		}
	}
	return sb.String()
}
