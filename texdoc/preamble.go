package texdoc

import (
	"strings"

	"github.com/texkit/texkit/texarg"
)

// Preamble builds the block above a document body: the document class with
// its options, an ordered package list, and any extra preamble nodes.
type Preamble struct {
	class        string
	classOptions *texarg.Arg
	packages     []*Macro
	extra        []Node
}

// NewPreamble creates a preamble for the given document class.
func NewPreamble(class string) *Preamble {
	return &Preamble{class: class, classOptions: texarg.NewArg()}
}

// SetClassOptionsText merges raw option text into the class options.
func (p *Preamble) SetClassOptionsText(text string) error {
	return p.classOptions.UpdateText(text)
}

// UsePackage appends a usepackage macro for name with optional options.
// Packages render in the order they were added.
func (p *Preamble) UsePackage(name string, opts *texarg.Arg) {
	m := NewMacro("usepackage")
	if opts != nil && !opts.IsEmpty() {
		m.AddOptionalArgument(opts)
	}
	m.AddArgument(texarg.MustParse(name))
	p.packages = append(p.packages, m)
}

// Add appends an arbitrary preamble node (macro definitions, settings).
func (p *Preamble) Add(nodes ...Node) {
	p.extra = append(p.extra, nodes...)
}

func (p *Preamble) String() string {
	class := NewMacro("documentclass")
	if !p.classOptions.IsEmpty() {
		class.AddOptionalArgument(p.classOptions)
	}
	class.AddArgument(texarg.MustParse(p.class))

	parts := []string{class.String()}
	for _, pkg := range p.packages {
		parts = append(parts, pkg.String())
	}
	for _, node := range p.extra {
		parts = append(parts, node.String())
	}
	return strings.Join(parts, "\n")
}
