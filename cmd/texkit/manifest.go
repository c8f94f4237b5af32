package main

import (
	"fmt"

	"github.com/texkit/texkit/texarg"
	"github.com/texkit/texkit/texdoc"
)

// Manifest is a declarative YAML description of a document fragment. A
// manifest with a class renders a preamble ahead of the body.
type Manifest struct {
	Class        string        `yaml:"class"`
	ClassOptions string        `yaml:"class_options"`
	Packages     []PackageSpec `yaml:"packages"`
	Body         []NodeSpec    `yaml:"body"`
}

// PackageSpec is one \usepackage line.
type PackageSpec struct {
	Name    string `yaml:"name"`
	Options string `yaml:"options"`
}

// NodeSpec is one body node. Exactly one of its fields may be set.
type NodeSpec struct {
	Text        string      `yaml:"text"`
	Macro       *MacroSpec  `yaml:"macro"`
	Environment *EnvSpec    `yaml:"environment"`
	Itemize     []string    `yaml:"itemize"`
	Enumerate   []string    `yaml:"enumerate"`
	Table       *TableSpec  `yaml:"table"`
	Figure      *FigureSpec `yaml:"figure"`
}

// ArgSpec is one argument group of a macro or environment.
type ArgSpec struct {
	Text     string `yaml:"text"`
	Optional bool   `yaml:"optional"`
}

// MacroSpec describes a macro invocation.
type MacroSpec struct {
	Name string    `yaml:"name"`
	Args []ArgSpec `yaml:"args"`
}

// EnvSpec describes a generic environment with nested body nodes.
type EnvSpec struct {
	Name string     `yaml:"name"`
	Args []ArgSpec  `yaml:"args"`
	Body []NodeSpec `yaml:"body"`
}

// TableSpec describes a table node.
type TableSpec struct {
	Rows      [][]string `yaml:"rows"`
	Alignment []string   `yaml:"alignment"`
	Variant   string     `yaml:"variant"`
	Caption   string     `yaml:"caption"`
	Label     string     `yaml:"label"`
	Position  string     `yaml:"position"`
	Header    bool       `yaml:"header"`
	Centered  *bool      `yaml:"centered"`
}

// FigureSpec describes a figure node.
type FigureSpec struct {
	Path     string `yaml:"path"`
	Width    string `yaml:"width"`
	Options  string `yaml:"options"`
	Caption  string `yaml:"caption"`
	Label    string `yaml:"label"`
	Position string `yaml:"position"`
}

// Build converts the manifest into a renderable node tree.
func (m *Manifest) Build() (texdoc.Node, error) {
	root := texdoc.NewContainer()

	if m.Class != "" {
		p := texdoc.NewPreamble(m.Class)
		if m.ClassOptions != "" {
			if err := p.SetClassOptionsText(m.ClassOptions); err != nil {
				return nil, fmt.Errorf("class options: %w", err)
			}
		}
		for _, pkg := range m.Packages {
			opts, err := parseOptional(pkg.Options)
			if err != nil {
				return nil, fmt.Errorf("package %s: %w", pkg.Name, err)
			}
			p.UsePackage(pkg.Name, opts)
		}
		root.AddContent(p)
	}

	for i, spec := range m.Body {
		node, err := buildNode(spec)
		if err != nil {
			return nil, fmt.Errorf("body node %d: %w", i, err)
		}
		root.AddContent(node)
	}

	return root, nil
}

func buildNode(spec NodeSpec) (texdoc.Node, error) {
	set := 0
	if spec.Text != "" {
		set++
	}
	for _, present := range []bool{
		spec.Macro != nil,
		spec.Environment != nil,
		spec.Itemize != nil,
		spec.Enumerate != nil,
		spec.Table != nil,
		spec.Figure != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one node kind, got %d", set)
	}

	switch {
	case spec.Text != "":
		return texdoc.Text(spec.Text), nil
	case spec.Macro != nil:
		return buildMacro(spec.Macro)
	case spec.Environment != nil:
		return buildEnvironment(spec.Environment)
	case spec.Itemize != nil:
		return texdoc.NewItemize(textNodes(spec.Itemize)...), nil
	case spec.Enumerate != nil:
		return texdoc.NewEnumerate(textNodes(spec.Enumerate)...), nil
	case spec.Table != nil:
		return buildTable(spec.Table)
	default:
		return buildFigure(spec.Figure)
	}
}

func buildMacro(spec *MacroSpec) (texdoc.Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("macro needs a name")
	}
	m := texdoc.NewMacro(spec.Name)
	if err := addArguments(m, spec.Args); err != nil {
		return nil, fmt.Errorf("macro %s: %w", spec.Name, err)
	}
	return m, nil
}

func buildEnvironment(spec *EnvSpec) (texdoc.Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("environment needs a name")
	}
	e := texdoc.NewEnvironment(spec.Name)
	if err := addArguments(e, spec.Args); err != nil {
		return nil, fmt.Errorf("environment %s: %w", spec.Name, err)
	}
	for i, inner := range spec.Body {
		node, err := buildNode(inner)
		if err != nil {
			return nil, fmt.Errorf("environment %s, node %d: %w", spec.Name, i, err)
		}
		e.AddContent(node)
	}
	return e, nil
}

func buildTable(spec *TableSpec) (texdoc.Node, error) {
	tbl := texdoc.NewTable()
	for _, row := range spec.Rows {
		tbl.AddRow(row...)
	}
	if len(spec.Alignment) > 0 {
		aligns := make([]texdoc.Alignment, len(spec.Alignment))
		for i, name := range spec.Alignment {
			a, err := texdoc.ParseAlignment(name)
			if err != nil {
				return nil, err
			}
			aligns[i] = a
		}
		tbl.SetAlignment(aligns...)
	}
	if spec.Variant != "" {
		v, err := texdoc.ParseTableVariant(spec.Variant)
		if err != nil {
			return nil, err
		}
		tbl.SetVariant(v)
	}
	if spec.Caption != "" {
		tbl.SetCaption(spec.Caption)
	}
	if spec.Label != "" {
		tbl.SetLabel(spec.Label)
	}
	if spec.Position != "" {
		tbl.Float(spec.Position)
	}
	if spec.Centered != nil {
		tbl.Center(*spec.Centered)
	}
	tbl.SetHeaderRow(spec.Header)
	return tbl, nil
}

func buildFigure(spec *FigureSpec) (texdoc.Node, error) {
	if spec.Path == "" {
		return nil, fmt.Errorf("figure needs a path")
	}
	fig := texdoc.NewFigure(spec.Path)
	if spec.Options != "" {
		if err := fig.SetOptionsText(spec.Options); err != nil {
			return nil, fmt.Errorf("figure options: %w", err)
		}
	}
	if spec.Width != "" {
		w, err := texarg.ParseLength(spec.Width)
		if err != nil {
			return nil, fmt.Errorf("figure width: %w", err)
		}
		fig.SetWidth(w)
	}
	if spec.Caption != "" {
		fig.SetCaption(spec.Caption)
	}
	if spec.Label != "" {
		fig.SetLabel(spec.Label)
	}
	if spec.Position != "" {
		fig.SetPosition(spec.Position)
	}
	return fig, nil
}

// argumentAdder covers the argument slot methods shared by macros and
// environments.
type argumentAdder interface {
	AddArgument(*texarg.Arg)
	AddOptionalArgument(*texarg.Arg)
}

func addArguments(c argumentAdder, specs []ArgSpec) error {
	for _, as := range specs {
		arg, err := texarg.Parse(as.Text)
		if err != nil {
			return err
		}
		if as.Optional {
			c.AddOptionalArgument(arg)
		} else {
			c.AddArgument(arg)
		}
	}
	return nil
}

func textNodes(items []string) []texdoc.Node {
	nodes := make([]texdoc.Node, len(items))
	for i, item := range items {
		nodes[i] = texdoc.Text(item)
	}
	return nodes
}

func parseOptional(text string) (*texarg.Arg, error) {
	if text == "" {
		return nil, nil
	}
	return texarg.Parse(text)
}
