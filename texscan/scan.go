// Package texscan locates macro invocations inside a host document and
// hands their raw argument interiors to the texarg parser. It is the
// extraction side of the markup boundary: the renderer writes markup,
// texscan reads it back out.
//
// Scanning is pure text walking over byte offsets; no I/O is performed.
package texscan

import (
	"strings"

	"github.com/texkit/texkit/texarg"
)

// ArgGroup is one bracketed argument group of an invocation.
type ArgGroup struct {
	Raw      string // interior text, brackets stripped
	Optional bool   // true for a square-bracketed group
}

// Parse parses the group's interior as an argument list.
func (g ArgGroup) Parse() (*texarg.Arg, error) {
	return texarg.Parse(g.Raw)
}

// Invocation is one macro call found in a document: its name, the argument
// groups immediately following it, and the byte offset of its backslash.
type Invocation struct {
	Name   string
	Groups []ArgGroup
	Offset int
}

// Scan walks a document and returns every macro invocation in order. A
// macro is a backslash followed by one or more letters; argument groups are
// consecutive brace or square-bracket groups directly after the name,
// located with the bracket scanner. A double backslash is a line break, not
// a macro. Comments (% to end of line) are skipped. An argument group whose
// bracket never closes is an unbalanced-bracket error.
func Scan(doc string) ([]Invocation, error) {
	var found []Invocation

	for i := 0; i < len(doc); {
		c := doc[i]

		// Skip comments, honoring escaped percent signs.
		if c == '%' && (i == 0 || doc[i-1] != '\\') {
			if nl := strings.IndexByte(doc[i:], '\n'); nl >= 0 {
				i += nl + 1
			} else {
				break
			}
			continue
		}

		if c != '\\' {
			i++
			continue
		}

		// Line break or escaped character, not an invocation.
		if i+1 >= len(doc) || !isMacroLetter(doc[i+1]) {
			i += 2
			continue
		}

		start := i
		j := i + 1
		for j < len(doc) && isMacroLetter(doc[j]) {
			j++
		}
		inv := Invocation{Name: doc[start+1 : j], Offset: start}

		// Collect consecutive argument groups.
		for j < len(doc) && (doc[j] == '{' || doc[j] == '[') {
			end, err := texarg.MatchingBracket(doc[j:])
			if err != nil {
				return nil, err
			}
			inv.Groups = append(inv.Groups, ArgGroup{
				Raw:      doc[j+1 : j+end],
				Optional: doc[j] == '[',
			})
			j += end + 1
		}

		found = append(found, inv)
		i = j
	}

	return found, nil
}

// isMacroLetter reports whether c can appear in a macro name. The @ sign is
// allowed, as in internal-style package names.
func isMacroLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}
