package texdoc

import (
	"fmt"
	"strings"

	"github.com/texkit/texkit/texarg"
)

// Alignment is a tabular column alignment.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment's column specifier.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "c"
	case AlignRight:
		return "r"
	default:
		return "l"
	}
}

// ParseAlignment resolves an alignment from its specifier or full name,
// case-insensitively.
func ParseAlignment(name string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("texdoc: unknown alignment %q", name)
}

// Matches reports whether name resolves to this alignment.
func (a Alignment) Matches(name string) bool {
	parsed, err := ParseAlignment(name)
	return err == nil && parsed == a
}

// TableVariant selects the tabular environment flavor.
type TableVariant uint8

const (
	VariantTabular TableVariant = iota
	VariantLongtable
	VariantTabularx
)

// String returns the variant's environment name.
func (v TableVariant) String() string {
	switch v {
	case VariantTabular:
		return "tabular"
	case VariantLongtable:
		return "longtable"
	case VariantTabularx:
		return "tabularx"
	default:
		return "tabular"
	}
}

// ParseTableVariant resolves a variant from its environment name,
// case-insensitively.
func ParseTableVariant(name string) (TableVariant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tabular":
		return VariantTabular, nil
	case "longtable":
		return VariantLongtable, nil
	case "tabularx":
		return VariantTabularx, nil
	}
	return 0, fmt.Errorf("texdoc: unknown table variant %q", name)
}

// Matches reports whether name resolves to this variant.
func (v TableVariant) Matches(name string) bool {
	parsed, err := ParseTableVariant(name)
	return err == nil && parsed == v
}

// Table is a content node marshalling rows of string cells into a tabular
// block. Captions and labels are explicit only; nothing is generated.
type Table struct {
	rows      [][]string
	alignment []Alignment
	variant   TableVariant
	caption   string
	label     string
	position  string
	floating  bool
	centered  bool
	headerRow bool
}

// NewTable creates an empty table rendered as a plain centered tabular.
func NewTable() *Table {
	return &Table{centered: true}
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the width of the widest row.
func (t *Table) NumColumns() int {
	cols := 0
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// SetAlignment sets per-column alignments. Columns beyond the given list
// fall back to left alignment.
func (t *Table) SetAlignment(aligns ...Alignment) {
	t.alignment = aligns
}

// SetVariant selects the tabular environment flavor.
func (t *Table) SetVariant(v TableVariant) {
	t.variant = v
}

// SetCaption sets an explicit caption. The table floats once captioned.
func (t *Table) SetCaption(caption string) {
	t.caption = caption
	t.floating = true
}

// SetLabel sets an explicit label. The table floats once labelled.
func (t *Table) SetLabel(label string) {
	t.label = label
	t.floating = true
}

// Float wraps the tabular in a table float with an explicit position
// specifier (may be empty).
func (t *Table) Float(position string) {
	t.floating = true
	t.position = position
}

// Center controls centering of the rendered table.
func (t *Table) Center(centered bool) {
	t.centered = centered
}

// SetHeaderRow marks the first row as a header separated by a rule.
func (t *Table) SetHeaderRow(header bool) {
	t.headerRow = header
}

// colSpec renders the column specifier, padding missing alignments left.
func (t *Table) colSpec() string {
	cols := t.NumColumns()
	var sb strings.Builder
	for i := 0; i < cols; i++ {
		if i < len(t.alignment) {
			sb.WriteString(t.alignment[i].String())
		} else {
			sb.WriteString(AlignLeft.String())
		}
	}
	return sb.String()
}

func (t *Table) String() string {
	inner := NewEnvironment(t.variant.String(), texarg.MustParse(t.colSpec()))
	for i, row := range t.rows {
		line := strings.Join(row, " & ") + ` \\`
		inner.AddContent(Text(line))
		if t.headerRow && i == 0 {
			inner.AddContent(Text(`\hline`))
		}
	}

	if !t.floating {
		if t.centered {
			wrap := NewEnvironment("center")
			wrap.AddContent(inner)
			return wrap.String()
		}
		return inner.String()
	}

	float := NewEnvironment("table")
	if t.position != "" {
		float.AddOptionalArgument(texarg.MustParse(t.position))
	}
	if t.centered {
		float.AddContent(NewMacro("centering"))
	}
	float.AddContent(inner)
	if t.caption != "" {
		float.AddContent(NewMacro("caption", texarg.MustParse(t.caption)))
	}
	if t.label != "" {
		float.AddContent(NewMacro("label", texarg.MustParse(t.label)))
	}
	return float.String()
}
