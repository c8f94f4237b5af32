// Package texarg parses LaTeX-style bracketed argument lists into a
// structured, mutable tree and renders the tree back to markup text.
//
// An argument list is the interior of one bracket pair: comma-separated
// entries of the form key, key=value, or key={nested, entries}. Whitespace
// around keys, "=", and commas is insignificant. Brackets and quotes may be
// escaped with a preceding backslash.
//
// # Data Model
//
// KeyVal: one key with an optional structured value.
// Arg:    an ordered sequence of KeyVal entries (one argument list).
//
// Values are themselves Args, so key={a, b=c} nests recursively. An entry
// whose value parses to nothing is normalized to a bare flag.
//
// # Update Algebra
//
// Arg.Update merges entry by entry: an incoming key that already exists has
// its value merged recursively (sub-options accumulate rather than clobber),
// a new key is appended. Updating an entry with an empty value clears it to
// a bare flag.
//
// # Serialization
//
// String renders a normalizing form: re-parsing the output yields an
// equivalent tree, and re-parsing that output is a fixed point. A single
// bare flag renders as the plain key with no braces; a trivial key=value
// pair renders unbraced; compound values are braced.
//
// # Example
//
//	a, _ := texarg.Parse("width=5cm, draw")
//	a.UpdateText("color={red!50}")
//	fmt.Println(a) // width = 5cm, draw, color = red!50
package texarg
