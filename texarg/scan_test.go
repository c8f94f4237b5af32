package texarg

import (
	"errors"
	"testing"
)

// ============================================================
// MatchingBracket Tests
// ============================================================

func TestMatchingBracket_Balanced(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"{}", 1},
		{"{abc}", 4},
		{"{a{b}c}", 6},
		{"{a{b{c}}d}", 9},
		{"[x[y]z]", 6},
		{"(1(2)3)", 6},
		{"{a[b(c}", 6}, // other bracket kinds are not tracked
		{"{}{}", 1},    // scan stops at the first match
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := MatchingBracket(tt.input)
			if err != nil {
				t.Fatalf("MatchingBracket failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMatchingBracket_InnerProperty(t *testing.T) {
	// For "{" + inner + "}" with balanced inner, the match is len(inner)+1.
	inners := []string{"", "abc", "{x}", "[a](b)", "{{}}", "a{b}c[d]e(f)g"}

	for _, inner := range inners {
		input := "{" + inner + "}"
		got, err := MatchingBracket(input)
		if err != nil {
			t.Fatalf("MatchingBracket(%q) failed: %v", input, err)
		}
		if got != len(inner)+1 {
			t.Errorf("MatchingBracket(%q): expected %d, got %d", input, len(inner)+1, got)
		}
	}
}

func TestMatchingBracket_Unbalanced(t *testing.T) {
	for _, input := range []string{"{", "{abc", "{a{b}", "[x", "(("} {
		t.Run(input, func(t *testing.T) {
			_, err := MatchingBracket(input)
			if !errors.Is(err, ErrUnbalanced) {
				t.Errorf("Expected ErrUnbalanced, got %v", err)
			}
		})
	}
}

func TestMatchingBracket_NotABracket(t *testing.T) {
	for _, input := range []string{"", "abc", "}x"} {
		t.Run(input, func(t *testing.T) {
			if _, err := MatchingBracket(input); err == nil {
				t.Errorf("Expected error for %q", input)
			}
		})
	}
}

// ============================================================
// SplitOutside Tests
// ============================================================

func TestSplitOutside(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim byte
		head  string
		rest  string
	}{
		{"simple", "a,b", ',', "a", "b"},
		{"no delimiter", "abc", ',', "abc", ""},
		{"empty", "", ',', "", ""},
		{"trims whitespace", "  a , b ", ',', "a", "b"},
		{"comma inside braces", "a={1,2},b=3", ',', "a={1,2}", "b=3"},
		{"comma inside square", "a=[1,2],b", ',', "a=[1,2]", "b"},
		{"comma inside parens", "f(x,y),z", ',', "f(x,y)", "z"},
		{"equals split", "key=value", '=', "key", "value"},
		{"equals inside nested", "k={a=b},j", '=', "k", "{a=b},j"},
		{"quoted delimiter", `a="x,y",b`, ',', `a="x,y"`, "b"},
		{"single quoted", "a='x,y',b", ',', "a='x,y'", "b"},
		{"escaped quote", `a=\",b`, ',', `a=\"`, "b"},
		{"escaped bracket", `a=\{,b`, ',', `a=\{`, "b"},
		{"bracket inside quotes ignored", `a="{",b`, ',', `a="{"`, "b"},
		{"only first split", "a,b,c", ',', "a", "b,c"},
		{"mixed nesting", "k={a,[b,(c,d)]},e", ',', "k={a,[b,(c,d)]}", "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, rest, err := SplitOutside(tt.input, tt.delim)
			if err != nil {
				t.Fatalf("SplitOutside failed: %v", err)
			}
			if head != tt.head || rest != tt.rest {
				t.Errorf("Expected (%q, %q), got (%q, %q)", tt.head, tt.rest, head, rest)
			}
		})
	}
}

func TestSplitOutside_MismatchedClose(t *testing.T) {
	// A closer with no matching opener is an unbalanced-bracket error, not a
	// silent pop.
	for _, input := range []string{"a},b", "{a(b},c", "]x"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := SplitOutside(input, ',')
			if !errors.Is(err, ErrUnbalanced) {
				t.Errorf("Expected ErrUnbalanced, got %v", err)
			}
		})
	}
}

func TestParseError_Offset(t *testing.T) {
	_, _, err := SplitOutside("ab}c", ',')
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if perr.Offset != 2 {
		t.Errorf("Expected offset 2, got %d", perr.Offset)
	}
}
