// Package formfield models the blank-versus-clear semantics of the admin
// edit forms.
//
// Every text input on an editor form distinguishes four states: the field
// was not submitted at all, it was submitted blank, it was submitted blank
// alongside an explicit clear checkbox, or it carried a value. A blank
// submission without the clear flag never erases stored content; partially
// filled forms must be safe to submit.
//
// Example usage in a section handler:
//
//	title := formfield.FromForm(r, "title")
//	doc.Footer.Title = title.Apply(doc.Footer.Title)
package formfield

import (
	"net/http"
	"strings"
)

// Kind enumerates the states an incoming form field can be in.
type Kind int

const (
	// Unset means the field was absent from the submission.
	Unset Kind = iota
	// Blank means the field was submitted empty (or whitespace only)
	// without a clear flag.
	Blank
	// BlankWithClear means the field was submitted empty and the
	// accompanying "<name>_clear" checkbox was set.
	BlankWithClear
	// Value means the field carried a non-blank value.
	Value
)

// Field is one incoming form field, already trimmed.
type Field struct {
	kind  Kind
	value string
}

// UnsetField returns a Field in the Unset state.
func UnsetField() Field { return Field{kind: Unset} }

// BlankField returns a Field in the Blank state.
func BlankField() Field { return Field{kind: Blank} }

// ClearField returns a Field in the BlankWithClear state.
func ClearField() Field { return Field{kind: BlankWithClear} }

// ValueField returns a Field carrying v (trimmed). A blank v yields Blank.
func ValueField(v string) Field {
	v = strings.TrimSpace(v)
	if v == "" {
		return Field{kind: Blank}
	}
	return Field{kind: Value, value: v}
}

// FromForm reads the named field from an already-parsed form. The clear
// flag is the "<name>_clear" checkbox; it only matters when the field
// itself is blank.
func FromForm(r *http.Request, name string) Field {
	vs, ok := r.Form[name]
	if !ok {
		return Field{kind: Unset}
	}
	v := strings.TrimSpace(vs[0])
	if v != "" {
		return Field{kind: Value, value: v}
	}
	if r.Form.Get(name+"_clear") != "" {
		return Field{kind: BlankWithClear}
	}
	return Field{kind: Blank}
}

// Kind reports the field's state.
func (f Field) Kind() Kind { return f.kind }

// Value returns the trimmed submitted value. Empty unless Kind is Value.
func (f Field) Value() string { return f.value }

// Apply merges the field into the stored value: a Value overwrites, a
// BlankWithClear erases, everything else leaves current untouched.
func (f Field) Apply(current string) string {
	switch f.kind {
	case Value:
		return f.value
	case BlankWithClear:
		return ""
	default:
		return current
	}
}

// ApplyFunc runs apply with the submitted value when the field carries one,
// clears via apply("") on BlankWithClear, and does nothing otherwise. It is
// a convenience for fields that need transformation (sanitization) before
// storage.
func (f Field) ApplyFunc(apply func(string)) {
	switch f.kind {
	case Value:
		apply(f.value)
	case BlankWithClear:
		apply("")
	}
}
