// Package symbol provides interned names used as registry keys.
//
// A Name wraps a unique.Handle, so two names built from the same text are
// the same value: comparison is a pointer compare and names can be used
// directly as map keys.
//
//	a := symbol.Intern("osc")
//	b := symbol.Intern("osc")
//	a == b // true
package symbol

import (
	"sort"
	"unique"
)

// Name is an interned symbol. The zero value is the empty name.
type Name struct {
	h unique.Handle[string]
}

// Empty is the empty name. It is equal to the zero Name.
var Empty Name

// Intern returns the Name for s. The empty string yields Empty.
func Intern(s string) Name {
	if s == "" {
		return Empty
	}
	return Name{h: unique.Make(s)}
}

// String returns the text of the name.
func (n Name) String() string {
	if n.IsEmpty() {
		return ""
	}
	return n.h.Value()
}

// IsEmpty reports whether n is the empty name.
func (n Name) IsEmpty() bool {
	return n == Empty
}

// Strings converts names to their text form, preserving order.
func Strings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

// Sort orders names lexicographically by text, in place.
func Sort(names []Name) {
	sort.Slice(names, func(i, j int) bool {
		return names[i].String() < names[j].String()
	})
}
