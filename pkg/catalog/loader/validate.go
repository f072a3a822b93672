// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"
)

// at most one of each per field
var singleAnnotations = []decl.AnnotationID{
	decl.AnnotationDefaultState,
	decl.AnnotationTriggerStateReset,
	decl.AnnotationRestrictionCategory,
}

func (f *File) toCatalog() (*decl.Catalog, error) {
	var cat decl.Catalog

	for i, m := range f.Metrics {
		if m.ID == "" {
			return nil, fmt.Errorf("metrics[%d]: id is required", i)
		}
		kind, err := decl.ParseMetricKind(m.Type)
		if err != nil {
			return nil, fmt.Errorf("metric '%s': %v", m.ID, err)
		}
		cat.Metrics = append(cat.Metrics, decl.MetricDeclaration{ID: m.ID, Kind: kind})
	}

	for i, a := range f.Atoms {
		atom, err := a.toAtom()
		if err != nil {
			if a.Name == "" {
				return nil, fmt.Errorf("atoms[%d]: %v", i, err)
			}
			return nil, fmt.Errorf("atom '%s': %v", a.Name, err)
		}
		cat.Atoms = append(cat.Atoms, atom)
	}

	return &cat, nil
}

func (a AtomConfig) toAtom() (decl.Atom, error) {
	if a.Name == "" {
		return decl.Atom{}, errors.New("name is required")
	}
	if a.Code <= 0 {
		return decl.Atom{}, fmt.Errorf("code must be positive (got %d)", a.Code)
	}

	anns, err := toAnnotations(a.Annotations)
	if err != nil {
		return decl.Atom{}, fmt.Errorf("atom annotations: %v", err)
	}

	atom := decl.Atom{
		Name:        a.Name,
		Code:        a.Code,
		Message:     a.Message,
		Restricted:  a.Restricted,
		Annotations: anns,
	}

	seen := make(map[int]string)
	for _, fc := range a.Fields {
		if other, ok := seen[fc.Index]; ok {
			return decl.Atom{}, fmt.Errorf("fields '%s' and '%s' share index %d", other, fc.Name, fc.Index)
		}
		seen[fc.Index] = fc.Name

		f, err := fc.toField()
		if err != nil {
			if fc.Name == "" {
				return decl.Atom{}, fmt.Errorf("field %d: %v", fc.Index, err)
			}
			return decl.Atom{}, fmt.Errorf("field '%s': %v", fc.Name, err)
		}
		atom.Fields = append(atom.Fields, f)
	}

	return atom, nil
}

func (fc FieldConfig) toField() (decl.AtomField, error) {
	if fc.Name == "" {
		return decl.AtomField{}, errors.New("name is required")
	}
	if fc.Index <= decl.AtomFieldIndex {
		return decl.AtomField{}, fmt.Errorf("index must be >= 1 (got %d)", fc.Index)
	}

	ft, err := decl.ParseFieldType(fc.Type)
	if err != nil {
		return decl.AtomField{}, err
	}
	if len(fc.EnumValues) > 0 && ft != decl.FieldEnum && ft != decl.FieldEnumArray {
		return decl.AtomField{}, fmt.Errorf("enum_values set on non-enum field of type '%s'", ft)
	}

	anns, err := toAnnotations(fc.Annotations)
	if err != nil {
		return decl.AtomField{}, err
	}

	f := decl.AtomField{
		Index:       fc.Index,
		Name:        fc.Name,
		Type:        ft,
		Annotations: anns,
		EnumValues:  fc.EnumValues,
	}

	if fc.Histogram != nil {
		spec, err := fc.Histogram.toSpec()
		if err != nil {
			return decl.AtomField{}, fmt.Errorf("histogram: %v", err)
		}
		f.Histogram = &spec
	}

	return f, nil
}

func toAnnotations(cfgs []AnnotationConfig) ([]decl.Annotation, error) {
	var anns []decl.Annotation

	for _, c := range cfgs {
		id, err := decl.ParseAnnotationID(c.ID)
		if err != nil {
			return nil, err
		}

		var a decl.Annotation
		switch {
		case c.Int != nil && c.Bool != nil:
			return nil, fmt.Errorf("annotation '%s': both int and bool values set", id)
		case c.Int != nil:
			a = decl.IntAnnotation(id, *c.Int)
		case c.Bool != nil:
			a = decl.BoolAnnotation(id, *c.Bool)
		default:
			return nil, fmt.Errorf("annotation '%s': value is required", id)
		}
		if a.Kind != id.Kind() {
			return nil, fmt.Errorf("annotation '%s': expected %s value, got %s", id, id.Kind(), a.Kind)
		}

		if slices.Contains(singleAnnotations, id) && slices.ContainsFunc(anns, func(v decl.Annotation) bool { return v.ID == id }) {
			return nil, fmt.Errorf("annotation '%s' set more than once", id)
		}

		anns = append(anns, a)
	}

	return anns, nil
}

func (h HistogramConfig) toSpec() (decl.HistogramBinSpec, error) {
	var n int
	for _, set := range []bool{h.Linear != nil, h.Exponential != nil, h.Explicit != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return decl.HistogramBinSpec{}, fmt.Errorf("exactly one of linear, exponential and explicit is required (got %d)", n)
	}

	switch {
	case h.Linear != nil:
		if err := h.Linear.validate(); err != nil {
			return decl.HistogramBinSpec{}, fmt.Errorf("linear: %v", err)
		}
		return decl.LinearBins(h.Linear.Min, h.Linear.Max, h.Linear.Count), nil
	case h.Exponential != nil:
		if err := h.Exponential.validate(); err != nil {
			return decl.HistogramBinSpec{}, fmt.Errorf("exponential: %v", err)
		}
		if h.Exponential.Min <= 0 {
			return decl.HistogramBinSpec{}, fmt.Errorf("exponential: min must be positive (got %g)", h.Exponential.Min)
		}
		return decl.ExponentialBins(h.Exponential.Min, h.Exponential.Max, h.Exponential.Count), nil
	default:
		if len(h.Explicit) == 0 {
			return decl.HistogramBinSpec{}, errors.New("explicit: at least one boundary is required")
		}
		for i, v := range h.Explicit {
			if !isFinite(v) {
				return decl.HistogramBinSpec{}, fmt.Errorf("explicit: boundary %d must be finite (got %g)", i, v)
			}
		}
		for i := 1; i < len(h.Explicit); i++ {
			if h.Explicit[i] <= h.Explicit[i-1] {
				return decl.HistogramBinSpec{}, fmt.Errorf("explicit: boundaries must be strictly ascending (%g after %g)", h.Explicit[i], h.Explicit[i-1])
			}
		}
		return decl.ExplicitBins(slices.Clone(h.Explicit)...), nil
	}
}

func (g GeneratedBinsConfig) validate() error {
	if g.Count <= 0 {
		return fmt.Errorf("count must be positive (got %d)", g.Count)
	}
	if !isFinite(g.Min) || !isFinite(g.Max) {
		return fmt.Errorf("min and max must be finite (got %g, %g)", g.Min, g.Max)
	}
	if g.Min >= g.Max {
		return fmt.Errorf("min must be less than max (got %g >= %g)", g.Min, g.Max)
	}
	return nil
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
