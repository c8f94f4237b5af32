package texarg

import (
	"fmt"
	"strings"
)

// Arg is the parsed in-memory representation of one argument list: an
// ordered sequence of KeyVal entries. Insertion order is significant and
// preserved. Keys are not required to be unique; lookups and merges match
// the first occurrence.
type Arg struct {
	entries []*KeyVal
}

// NewArg creates an empty argument list.
func NewArg() *Arg {
	return &Arg{}
}

// FromKeyVals creates an argument list wrapping the given entries in order.
// Nil entries are skipped.
func FromKeyVals(kvs ...*KeyVal) *Arg {
	a := &Arg{}
	for _, kv := range kvs {
		if kv != nil {
			a.entries = append(a.entries, kv)
		}
	}
	return a
}

// ParseList parses each string independently and concatenates the resulting
// entries in order.
func ParseList(items []string) (*Arg, error) {
	a := &Arg{}
	for _, item := range items {
		parsed, err := Parse(item)
		if err != nil {
			return nil, err
		}
		a.entries = append(a.entries, parsed.entries...)
	}
	return a, nil
}

// Parse parses raw argument text into an Arg. The text is repeatedly split
// at top-level commas; each segment is split at a top-level "=" into a key
// and optional value text, and the value text is parsed recursively. Empty
// or all-whitespace input yields an empty Arg, not an error.
func Parse(s string) (*Arg, error) {
	a := &Arg{}
	for len(s) > 0 {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			break
		}

		segment, remainder, err := SplitOutside(s, ',')
		if err != nil {
			return nil, err
		}
		key, value, err := SplitOutside(segment, '=')
		if err != nil {
			return nil, err
		}

		if value == "" {
			a.entries = append(a.entries, NewKeyVal(key))
		} else {
			kv, err := ParseKeyVal(key, value)
			if err != nil {
				return nil, err
			}
			a.entries = append(a.entries, kv)
		}
		s = remainder
	}
	return a, nil
}

// MustParse is like Parse but panics on error. Intended for static argument
// text in composition code.
func MustParse(s string) *Arg {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of entries.
func (a *Arg) Len() int {
	return len(a.entries)
}

// IsEmpty reports whether the list has no entries.
func (a *Arg) IsEmpty() bool {
	return len(a.entries) == 0
}

// At returns the i-th entry. The index must be in range.
func (a *Arg) At(i int) *KeyVal {
	return a.entries[i]
}

// KeyVals returns the underlying entry sequence in order.
func (a *Arg) KeyVals() []*KeyVal {
	return a.entries
}

// Keys returns the entry keys in order.
func (a *Arg) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, kv := range a.entries {
		keys[i] = kv.key
	}
	return keys
}

// Has reports whether any entry has the given key.
func (a *Arg) Has(key string) bool {
	for _, kv := range a.entries {
		if kv.key == key {
			return true
		}
	}
	return false
}

// Get returns the value of the first entry with the given key, or nil when
// the key is absent or the entry is a bare flag. A missing key is an absent
// result here, not an error; contrast GetKeyVal.
func (a *Arg) Get(key string) *Arg {
	for _, kv := range a.entries {
		if kv.key == key {
			return kv.value
		}
	}
	return nil
}

// GetKeyVal returns the first entry with the given key, or ErrKeyNotFound.
func (a *Arg) GetKeyVal(key string) (*KeyVal, error) {
	for _, kv := range a.entries {
		if kv.key == key {
			return kv, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %q", ErrKeyNotFound, key, a.String())
}

// Append adds an entry to the end of the list.
func (a *Arg) Append(kv *KeyVal) {
	if kv == nil {
		return
	}
	a.entries = append(a.entries, kv)
}

// Remove deletes the first entry with the given key, if present.
func (a *Arg) Remove(key string) {
	for i, kv := range a.entries {
		if kv.key == key {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return
		}
	}
}

// RemoveAt deletes the entry at the given index, if in range.
func (a *Arg) RemoveAt(i int) {
	if i < 0 || i >= len(a.entries) {
		return
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
}

// Delete deletes the first entry with the given key, returning
// ErrKeyNotFound when the key is absent.
func (a *Arg) Delete(key string) error {
	for i, kv := range a.entries {
		if kv.key == key {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// Update merges another argument list into this one, entry by entry. An
// incoming key that already exists (first match) has its value merged via
// KeyVal.UpdateValue; a new key is appended verbatim. Order of pre-existing
// entries is preserved; new entries keep the order they arrive in.
func (a *Arg) Update(newArgs *Arg) {
	if newArgs == nil {
		return
	}
	for _, kv := range newArgs.entries {
		if existing, err := a.GetKeyVal(kv.key); err == nil {
			existing.UpdateValue(kv.value)
		} else {
			a.entries = append(a.entries, kv)
		}
	}
}

// UpdateText parses raw argument text and merges it as Update does.
func (a *Arg) UpdateText(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	a.Update(parsed)
	return nil
}

// UpdateKey sets or merges the value of a single entry by name. If the key
// exists (first match), its value is merged via KeyVal.UpdateValue, so a
// nil or empty value clears the entry to a bare flag without deleting it.
// Otherwise a fresh entry is appended.
func (a *Arg) UpdateKey(key string, value *Arg) {
	if existing, err := a.GetKeyVal(key); err == nil {
		existing.UpdateValue(value)
		return
	}
	a.entries = append(a.entries, NewKeyValArg(key, value))
}

// UpdateKeyText parses raw value text and applies UpdateKey.
func (a *Arg) UpdateKeyText(key, value string) error {
	parsed, err := parseValueText(value)
	if err != nil {
		return err
	}
	a.UpdateKey(key, parsed)
	return nil
}

// Equal reports whether two argument lists have the same ordered sequence
// of keys and structurally equal values.
func (a *Arg) Equal(other *Arg) bool {
	if a == nil {
		return other == nil || len(other.entries) == 0
	}
	if other == nil {
		return len(a.entries) == 0
	}
	if len(a.entries) != len(other.entries) {
		return false
	}
	for i, kv := range a.entries {
		okv := other.entries[i]
		if kv.key != okv.key {
			return false
		}
		switch {
		case kv.value == nil && okv.value == nil:
		case kv.value == nil || okv.value == nil:
			return false
		case !kv.value.Equal(okv.value):
			return false
		}
	}
	return true
}

// String renders the list as normalized argument text. A list holding
// exactly one bare flag renders as the plain key with no braces, letting a
// flag-style option round-trip as plain text. Otherwise entries render via
// KeyVal.String joined by ", ".
func (a *Arg) String() string {
	if len(a.entries) == 1 && a.entries[0].value == nil {
		return a.entries[0].key
	}
	parts := make([]string, len(a.entries))
	for i, kv := range a.entries {
		parts[i] = kv.String()
	}
	return strings.Join(parts, ", ")
}
