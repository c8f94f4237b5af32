// Package texdoc models LaTeX document objects (macros, environments, and
// a few convenience nodes such as lists, tables, figures, and preambles) on
// top of the texarg argument tree, and renders them to markup text.
//
// A Macro is a name plus an ordered list of texarg.Arg parameters, each
// tagged required (braced) or optional (square-bracketed). An Environment
// adds an ordered content list of heterogeneous nodes (raw text, macros,
// tables, figures, nested environments) and renders as a begin marker, an
// indented content block, and an end marker. A Container is an unnamed
// environment that renders its content with no markers.
//
// Argument and content lists are never sparse: all positional mutators
// validate the index before mutating and return ErrIndexOutOfRange on
// failure, leaving the node untouched.
//
//	env := texdoc.NewEnvironment("center")
//	env.AddContent(texdoc.Text("hello"))
//	fmt.Println(env)
//	// \begin{center}
//	//         hello
//	// \end{center}
package texdoc
