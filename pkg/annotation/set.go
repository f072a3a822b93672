// SPDX-License-Identifier: GPL-3.0-or-later

package annotation

import "github.com/netdata/netdata/go/statsgen/pkg/decl"

// Condition gates an entry on the runtime value of a field argument.
type Condition struct {
	FieldIndex int `json:"field_index" yaml:"field_index"`
	Equals     int `json:"equals" yaml:"equals"`
}

// Entry is one emission-ready annotation.
// Symbol is set for RESTRICTION_CATEGORY only and replaces IntValue in generated code.
type Entry struct {
	ID        decl.AnnotationID   `json:"id" yaml:"id"`
	Name      string              `json:"name" yaml:"name"`
	Kind      decl.AnnotationKind `json:"kind" yaml:"kind"`
	IntValue  int                 `json:"int_value,omitempty" yaml:"int_value,omitempty"`
	BoolValue bool                `json:"bool_value,omitempty" yaml:"bool_value,omitempty"`
	Symbol    string              `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Condition *Condition          `json:"condition,omitempty" yaml:"condition,omitempty"`
}

func (e Entry) IsConditional() bool { return e.Condition != nil }

// Set is the ordered annotation list of one field. Static entries keep
// declaration order; a conditional entry, if any, is always last.
type Set struct {
	FieldIndex int     `json:"field_index" yaml:"field_index"`
	Entries    []Entry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

func (s Set) Empty() bool { return len(s.Entries) == 0 }

// AtomLevel reports whether the set applies to the atom as a whole.
func (s Set) AtomLevel() bool { return s.FieldIndex == decl.AtomFieldIndex }

// StaticCount is the number of entries emitted unconditionally.
func (s Set) StaticCount() int {
	n := 0
	for _, e := range s.Entries {
		if !e.IsConditional() {
			n++
		}
	}
	return n
}

// Count is the number of entries emitted when the field's runtime value is v.
func (s Set) Count(v int) int {
	n := s.StaticCount()
	if c := s.Conditional(); c != nil && c.Condition.Equals == v {
		n++
	}
	return n
}

func (s Set) Static() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if !e.IsConditional() {
			out = append(out, e)
		}
	}
	return out
}

// Conditional returns the synthesized reset entry or nil.
func (s Set) Conditional() *Entry {
	if n := len(s.Entries); n > 0 && s.Entries[n-1].IsConditional() {
		e := s.Entries[n-1]
		return &e
	}
	return nil
}
