// SPDX-License-Identifier: GPL-3.0-or-later

package annotation

import (
	"fmt"
	"slices"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"
)

// FieldGroup is the value-level annotation set of one field.
// ValueIndex is the 0-based position of the field among the atom values.
type FieldGroup struct {
	FieldIndex int `json:"field_index" yaml:"field_index"`
	ValueIndex int `json:"value_index" yaml:"value_index"`
	Set        Set `json:"set" yaml:"set"`
}

// AtomAnnotations holds the atom-level set and the non-empty value-level groups
// ordered by field index.
type AtomAnnotations struct {
	Atom   Set          `json:"atom" yaml:"atom"`
	Values []FieldGroup `json:"values,omitempty" yaml:"values,omitempty"`
}

// ResolveAtom resolves every annotation set of atom. Fields with an index below
// firstValueField are not atom values and are skipped.
func (r *Resolver) ResolveAtom(atom decl.Atom, firstValueField int) (AtomAnnotations, error) {
	var res AtomAnnotations

	set, err := r.Resolve(decl.AtomFieldIndex, atom.Annotations)
	if err != nil {
		return res, fmt.Errorf("atom '%s': %w", atom.Name, err)
	}
	res.Atom = set

	fields := slices.Clone(atom.Fields)
	slices.SortStableFunc(fields, func(a, b decl.AtomField) int { return a.Index - b.Index })

	for _, f := range fields {
		if f.Index < firstValueField || f.Index <= decl.AtomFieldIndex {
			continue
		}
		set, err := r.Resolve(f.Index, f.Annotations)
		if err != nil {
			return AtomAnnotations{}, fmt.Errorf("atom '%s' field '%s': %w", atom.Name, f.Name, err)
		}
		if set.Empty() {
			continue
		}
		res.Values = append(res.Values, FieldGroup{
			FieldIndex: f.Index,
			ValueIndex: f.Index - firstValueField,
			Set:        set,
		})
	}

	return res, nil
}
