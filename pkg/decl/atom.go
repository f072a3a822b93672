// SPDX-License-Identifier: GPL-3.0-or-later

package decl

// AtomFieldIndex is the synthetic field index of annotations that apply to the atom as a whole.
const AtomFieldIndex = 0

type BinStrategy int

const (
	BinLinear BinStrategy = iota + 1
	BinExponential
	BinExplicit
)

func (s BinStrategy) String() string {
	switch s {
	case BinLinear:
		return "linear"
	case BinExponential:
		return "exponential"
	case BinExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// HistogramBinSpec describes how a field's histogram boundaries are generated.
// Min, Max and Count are used by the linear and exponential strategies, Boundaries by the explicit one.
type HistogramBinSpec struct {
	Strategy   BinStrategy `json:"strategy" yaml:"strategy"`
	Min        float32     `json:"min,omitempty" yaml:"min,omitempty"`
	Max        float32     `json:"max,omitempty" yaml:"max,omitempty"`
	Count      int         `json:"count,omitempty" yaml:"count,omitempty"`
	Boundaries []float32   `json:"boundaries,omitempty" yaml:"boundaries,omitempty"`
}

func LinearBins(min, max float32, count int) HistogramBinSpec {
	return HistogramBinSpec{Strategy: BinLinear, Min: min, Max: max, Count: count}
}

func ExponentialBins(min, max float32, count int) HistogramBinSpec {
	return HistogramBinSpec{Strategy: BinExponential, Min: min, Max: max, Count: count}
}

func ExplicitBins(boundaries ...float32) HistogramBinSpec {
	return HistogramBinSpec{Strategy: BinExplicit, Boundaries: boundaries}
}

type (
	// Atom is one structured telemetry event definition.
	Atom struct {
		Name       string
		Code       int
		Message    string
		Restricted bool
		// Annotations apply to the atom as a whole (field index 0).
		Annotations []Annotation
		Fields      []AtomField
	}
	AtomField struct {
		Index       int
		Name        string
		Type        FieldType
		Annotations []Annotation
		Histogram   *HistogramBinSpec
		EnumValues  map[int]string
	}
)

// Catalog is the full set of declarations handed to the resolvers.
type Catalog struct {
	Metrics []MetricDeclaration
	Atoms   []Atom
}
