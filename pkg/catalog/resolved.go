// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"encoding/binary"

	"github.com/netdata/netdata/go/statsgen/pkg/annotation"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"
	"github.com/netdata/netdata/go/statsgen/pkg/metricid"

	"github.com/google/uuid"
)

type (
	// Resolved is the emitter input: everything generated code needs, in a
	// deterministic order.
	Resolved struct {
		Target  Target            `json:"target" yaml:"target"`
		Metrics []metricid.Metric `json:"metrics,omitempty" yaml:"metrics,omitempty"`
		Atoms   []ResolvedAtom    `json:"atoms,omitempty" yaml:"atoms,omitempty"`
		// Digest is a structural hash of Target, Metrics and Atoms.
		Digest uint64 `json:"digest" yaml:"digest"`
	}
	ResolvedAtom struct {
		Name        string                     `json:"name" yaml:"name"`
		Code        int                        `json:"code" yaml:"code"`
		Message     string                     `json:"message,omitempty" yaml:"message,omitempty"`
		Restricted  bool                       `json:"restricted,omitempty" yaml:"restricted,omitempty"`
		Fields      []ResolvedField            `json:"fields,omitempty" yaml:"fields,omitempty"`
		Annotations annotation.AtomAnnotations `json:"annotations" yaml:"annotations"`
	}
	ResolvedField struct {
		Index      int                `json:"index" yaml:"index"`
		Name       string             `json:"name" yaml:"name"`
		Type       decl.FieldType     `json:"type" yaml:"type"`
		EnumValues map[int]string     `json:"enum_values,omitempty" yaml:"enum_values,omitempty"`
		Histogram  *ResolvedHistogram `json:"histogram,omitempty" yaml:"histogram,omitempty"`
	}
	ResolvedHistogram struct {
		Spec decl.HistogramBinSpec `json:"spec" yaml:"spec"`
		Bins []float32             `json:"bins" yaml:"bins"`
	}
)

// Metric returns the resolved metric with the given id.
func (r *Resolved) Metric(id string) (metricid.Metric, bool) {
	for _, m := range r.Metrics {
		if m.ID == id {
			return m, true
		}
	}
	return metricid.Metric{}, false
}

// Atom returns the resolved atom with the given name.
func (r *Resolved) Atom(name string) (*ResolvedAtom, bool) {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			return &r.Atoms[i], true
		}
	}
	return nil, false
}

// ID is a name-based (version 5) UUID of the digest. Identical content gets
// the same ID on every run, so generated code can embed it as a build id.
func (r *Resolved) ID() string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], r.Digest)
	return uuid.NewSHA1(uuid.NameSpaceOID, b[:]).String()
}
