package texarg

import (
	"strings"
)

// bracket pairs recognized by the scanner and splitter.
func closerFor(open byte) (byte, bool) {
	switch open {
	case '{':
		return '}', true
	case '[':
		return ']', true
	case '(':
		return ')', true
	}
	return 0, false
}

func openerFor(close byte) (byte, bool) {
	switch close {
	case '}':
		return '{', true
	case ']':
		return '[', true
	case ')':
		return '(', true
	}
	return 0, false
}

// MatchingBracket returns the index of the character that closes the bracket
// at s[0], scanning forward. Nested occurrences of the same opener increment
// a depth counter; the corresponding closer decrements it; the match is the
// character that returns the depth to zero. Other bracket kinds are not
// tracked, and no escape handling is applied (contrast SplitOutside).
//
// Returns ErrUnbalanced if the string is exhausted before the bracket
// closes, and a ParseError if s does not start with {, [, or (.
func MatchingBracket(s string) (int, error) {
	if s == "" {
		return 0, parseErrorf(nil, 0, "empty string, expected opening bracket")
	}
	open := s[0]
	closing, ok := closerFor(open)
	if !ok {
		return 0, parseErrorf(nil, 0, "expected opening bracket, got %q", open)
	}

	depth := 1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, parseErrorf(ErrUnbalanced, 0, "no %q closing %q", closing, open)
}

// SplitOutside splits s at the first occurrence of delim that is outside all
// brackets and quotes. It returns the text before the delimiter and the
// remainder, both trimmed of surrounding whitespace. If the delimiter never
// occurs at the top level, the whole trimmed string is returned with an
// empty remainder.
//
// Nesting tracks {, [, and ( on a stack; a closer pops only its own opener,
// and a closer with no matching opener is an unbalanced-bracket error. An
// unescaped single or double quote toggles string state; while inside a
// string, delimiter and bracket characters are not interpreted. A character
// is escaped if immediately preceded by a backslash.
func SplitOutside(s string, delim byte) (head, rest string, err error) {
	var stack []byte
	inString := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		escaped := i > 0 && s[i-1] == '\\'

		if inString {
			if (c == '\'' || c == '"') && !escaped {
				inString = false
			}
			continue
		}

		switch {
		case c == '\'' || c == '"':
			if !escaped {
				inString = true
			}

		case c == '{' || c == '[' || c == '(':
			if !escaped {
				stack = append(stack, c)
			}

		case c == '}' || c == ']' || c == ')':
			if escaped {
				continue
			}
			open, _ := openerFor(c)
			if len(stack) == 0 || stack[len(stack)-1] != open {
				return "", "", parseErrorf(ErrUnbalanced, i, "unexpected %q", c)
			}
			stack = stack[:len(stack)-1]

		case c == delim:
			if len(stack) == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), nil
			}
		}
	}

	return strings.TrimSpace(s), "", nil
}
