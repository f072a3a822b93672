// SPDX-License-Identifier: GPL-3.0-or-later

package histogram

import (
	"errors"
	"fmt"
	"math"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"
)

// Underflow is the lower boundary of bucket 0. Every value below the first
// declared boundary, including Underflow itself, lands in bucket 0.
const Underflow float32 = -math.MaxFloat32

var (
	ErrInvalidBins     = errors.New("histogram: invalid bin parameters")
	ErrUnknownStrategy = errors.New("histogram: unknown bin strategy")
)

// Histogram is a bucket boundary table with a parallel count vector.
// Boundaries never change after construction. Counts are not synchronized:
// AddValue and Clear must not be called concurrently on the same instance.
type Histogram struct {
	bins   []float32
	counts []int
}

// CreateLinear builds count+2 boundaries: Underflow, min, count-1 interior
// boundaries spaced by (max-min)/count, and max.
func CreateLinear(min, max float32, count int) (*Histogram, error) {
	if err := checkGenerated(min, max, count); err != nil {
		return nil, err
	}

	binWidth := (max - min) / float32(count)

	h := newHistogram(count + 2)
	h.bins[1] = min
	for i := 2; i <= count; i++ {
		h.bins[i] = h.bins[i-1] + binWidth
	}
	h.bins[count+1] = max

	return h, nil
}

// CreateExponential builds count+2 boundaries: Underflow, min, count-1 interior
// boundaries growing by the factor (max/min)^(1/count), and max.
func CreateExponential(min, max float32, count int) (*Histogram, error) {
	if err := checkGenerated(min, max, count); err != nil {
		return nil, err
	}
	if min <= 0 {
		return nil, fmt.Errorf("%w: exponential bins require min > 0 (got %g)", ErrInvalidBins, min)
	}

	factor := float32(math.Pow(float64(max/min), 1.0/float64(count)))

	h := newHistogram(count + 2)
	h.bins[1] = min
	for i := 2; i <= count; i++ {
		h.bins[i] = h.bins[i-1] * factor
	}
	h.bins[count+1] = max

	return h, nil
}

// CreateExplicit builds len(bounds)+1 boundaries: Underflow followed by bounds
// verbatim. Ordering is not checked.
func CreateExplicit(bounds ...float32) *Histogram {
	h := newHistogram(len(bounds) + 1)
	copy(h.bins[1:], bounds)
	return h
}

// FromSpec dispatches on the spec's strategy.
func FromSpec(spec decl.HistogramBinSpec) (*Histogram, error) {
	switch spec.Strategy {
	case decl.BinLinear:
		return CreateLinear(spec.Min, spec.Max, spec.Count)
	case decl.BinExponential:
		return CreateExponential(spec.Min, spec.Max, spec.Count)
	case decl.BinExplicit:
		return CreateExplicit(spec.Boundaries...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(spec.Strategy))
	}
}

func newHistogram(n int) *Histogram {
	h := &Histogram{
		bins:   make([]float32, n),
		counts: make([]int, n),
	}
	h.bins[0] = Underflow
	return h
}

func checkGenerated(min, max float32, count int) error {
	switch {
	case count <= 0:
		return fmt.Errorf("%w: count must be positive (got %d)", ErrInvalidBins, count)
	case !isFinite(min) || !isFinite(max):
		return fmt.Errorf("%w: min and max must be finite (got %g, %g)", ErrInvalidBins, min, max)
	case min >= max:
		return fmt.Errorf("%w: min must be less than max (got %g >= %g)", ErrInvalidBins, min, max)
	}
	return nil
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AddValue increments the count of the highest bucket whose lower boundary v
// meets or exceeds. The last bucket has no upper bound.
func (h *Histogram) AddValue(v float32) {
	i := 0
	for ; i < len(h.bins)-1; i++ {
		if v < h.bins[i+1] {
			break
		}
	}
	h.counts[i]++
}

// Clear zeroes all counts.
func (h *Histogram) Clear() {
	clear(h.counts)
}

// Bins returns a copy of the bucket boundaries.
func (h *Histogram) Bins() []float32 {
	return append([]float32(nil), h.bins...)
}

// BinCounts returns a copy of the bucket counts.
func (h *Histogram) BinCounts() []int {
	return append([]int(nil), h.counts...)
}

func (h *Histogram) Len() int { return len(h.bins) }
