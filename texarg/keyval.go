package texarg

import (
	"fmt"
	"strings"
)

// KeyVal is one entry in an argument list: a mandatory key with an optional
// structured value. The value is always nil or a non-empty Arg; a value that
// parses to nothing is normalized to nil, making the entry a bare flag.
type KeyVal struct {
	key   string
	value *Arg
}

// NewKeyVal creates a bare flag entry with no value.
func NewKeyVal(key string) *KeyVal {
	return &KeyVal{key: key}
}

// NewKeyValArg creates an entry with a structured value. A nil or empty
// value yields a bare flag.
func NewKeyValArg(key string, value *Arg) *KeyVal {
	kv := &KeyVal{key: key}
	kv.SetValue(value)
	return kv
}

// ParseKeyVal creates an entry from raw value text. One layer of enclosing
// braces is stripped before the interior is parsed as a nested Arg, so
// "key = {a, b=c}" yields a two-entry value.
func ParseKeyVal(key, value string) (*KeyVal, error) {
	kv := &KeyVal{key: key}
	if err := kv.SetValueText(value); err != nil {
		return nil, err
	}
	return kv, nil
}

// Key returns the entry's key.
func (kv *KeyVal) Key() string {
	return kv.key
}

// SetKey replaces the entry's key.
func (kv *KeyVal) SetKey(key string) {
	kv.key = key
}

// Value returns the entry's value, or nil for a bare flag.
func (kv *KeyVal) Value() *Arg {
	return kv.value
}

// SetValue replaces the entry's value wholesale. A nil or empty Arg clears
// the entry to a bare flag.
func (kv *KeyVal) SetValue(value *Arg) {
	if value == nil || value.Len() == 0 {
		kv.value = nil
		return
	}
	kv.value = value
}

// SetValueText parses raw value text and replaces the entry's value. Empty
// or all-whitespace text clears the entry to a bare flag.
func (kv *KeyVal) SetValueText(value string) error {
	parsed, err := parseValueText(value)
	if err != nil {
		return err
	}
	kv.value = parsed
	return nil
}

// HasValue reports whether the entry carries any value data.
func (kv *KeyVal) HasValue() bool {
	return kv.value != nil && kv.value.Len() > 0
}

// UpdateValue merges a new value into the entry. An empty or nil new value
// clears the existing value (updating with nothing erases, it does not
// no-op). If the entry currently has no value, the new value is adopted
// wholesale; otherwise the values merge key by key, so applying the same
// option twice with different sub-options accumulates rather than clobbers.
func (kv *KeyVal) UpdateValue(newValue *Arg) {
	if newValue == nil || newValue.Len() == 0 {
		kv.value = nil
		return
	}
	if kv.value == nil {
		kv.value = newValue
		return
	}
	kv.value.Update(newValue)
}

// UpdateValueText parses raw value text and merges it as UpdateValue does.
func (kv *KeyVal) UpdateValueText(value string) error {
	parsed, err := parseValueText(value)
	if err != nil {
		return err
	}
	kv.UpdateValue(parsed)
	return nil
}

// String renders the entry. A bare flag renders as the key alone. A value
// holding a single valueless entry renders flat as "key = value"; compound
// values are braced as "key = {...}" to stay syntactically valid.
func (kv *KeyVal) String() string {
	if kv.value == nil {
		return kv.key
	}
	if kv.value.Len() == 1 && !kv.value.At(0).HasValue() {
		return fmt.Sprintf("%s = %s", kv.key, kv.value)
	}
	return fmt.Sprintf("%s = {%s}", kv.key, kv.value)
}

// parseValueText strips one layer of enclosing braces and parses the
// interior. Returns nil for text that parses to nothing.
func parseValueText(value string) (*Arg, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if value[0] == '{' && value[len(value)-1] == '}' {
		value = strings.TrimSpace(value[1 : len(value)-1])
	}
	parsed, err := Parse(value)
	if err != nil {
		return nil, err
	}
	if parsed.Len() == 0 {
		return nil, nil
	}
	return parsed, nil
}
