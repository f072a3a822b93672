// SPDX-License-Identifier: GPL-3.0-or-later

package histogram

import (
	"math"
	"testing"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinear(t *testing.T) *Histogram {
	h, err := CreateLinear(0, 50, 5)
	require.NoError(t, err)
	return h
}

func newExponential(t *testing.T) *Histogram {
	h, err := CreateExponential(5, 160, 5)
	require.NoError(t, err)
	return h
}

func newExplicit(_ *testing.T) *Histogram {
	return CreateExplicit(-10, -7, 0, 19, 100)
}

func TestCreate(t *testing.T) {
	tests := map[string]struct {
		create   func(t *testing.T) *Histogram
		wantBins []float32
	}{
		"linear": {
			create:   newLinear,
			wantBins: []float32{Underflow, 0, 10, 20, 30, 40, 50},
		},
		"exponential": {
			create:   newExponential,
			wantBins: []float32{Underflow, 5, 10, 20, 40, 80, 160},
		},
		"explicit": {
			create:   newExplicit,
			wantBins: []float32{Underflow, -10, -7, 0, 19, 100},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h := test.create(t)

			assert.Equal(t, test.wantBins, h.Bins())
			assert.Equal(t, make([]int, len(test.wantBins)), h.BinCounts())
			assert.Equal(t, len(test.wantBins), h.Len())
		})
	}
}

func TestCreate_InvalidParameters(t *testing.T) {
	tests := map[string]struct {
		create func() (*Histogram, error)
	}{
		"linear zero count":          {create: func() (*Histogram, error) { return CreateLinear(0, 10, 0) }},
		"linear negative count":      {create: func() (*Histogram, error) { return CreateLinear(0, 10, -3) }},
		"linear min equals max":      {create: func() (*Histogram, error) { return CreateLinear(10, 10, 2) }},
		"linear inverted":            {create: func() (*Histogram, error) { return CreateLinear(10, 0, 2) }},
		"linear infinite max":        {create: func() (*Histogram, error) { return CreateLinear(0, float32(math.Inf(1)), 2) }},
		"exponential zero min":       {create: func() (*Histogram, error) { return CreateExponential(0, 10, 2) }},
		"exponential negative min":   {create: func() (*Histogram, error) { return CreateExponential(-5, 10, 2) }},
		"exponential inverted":       {create: func() (*Histogram, error) { return CreateExponential(100, 10, 2) }},
		"exponential zero count":     {create: func() (*Histogram, error) { return CreateExponential(1, 10, 0) }},
		"spec with unknown strategy": {create: func() (*Histogram, error) { return FromSpec(decl.HistogramBinSpec{}) }},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h, err := test.create()
			assert.Error(t, err)
			assert.Nil(t, h)
		})
	}
}

func TestHistogram_AddValue(t *testing.T) {
	tests := map[string]struct {
		create     func(t *testing.T) *Histogram
		values     []float32
		wantCounts []int
	}{
		"linear single value": {
			create:     newLinear,
			values:     []float32{18},
			wantCounts: []int{0, 0, 1, 0, 0, 0, 0},
		},
		"exponential single value": {
			create:     newExponential,
			values:     []float32{101},
			wantCounts: []int{0, 0, 0, 0, 0, 1, 0},
		},
		"explicit single value": {
			create:     newExplicit,
			values:     []float32{0},
			wantCounts: []int{0, 0, 0, 1, 0, 0},
		},
		"linear underflow": {
			create:     newLinear,
			values:     []float32{-100, Underflow},
			wantCounts: []int{2, 0, 0, 0, 0, 0, 0},
		},
		"exponential underflow": {
			create:     newExponential,
			values:     []float32{-100, Underflow},
			wantCounts: []int{2, 0, 0, 0, 0, 0, 0},
		},
		"explicit underflow": {
			create:     newExplicit,
			values:     []float32{-100, Underflow},
			wantCounts: []int{2, 0, 0, 0, 0, 0},
		},
		"linear overflow": {
			create:     newLinear,
			values:     []float32{200},
			wantCounts: []int{0, 0, 0, 0, 0, 0, 1},
		},
		"exponential overflow": {
			create:     newExponential,
			values:     []float32{200},
			wantCounts: []int{0, 0, 0, 0, 0, 0, 1},
		},
		"explicit overflow": {
			create:     newExplicit,
			values:     []float32{200},
			wantCounts: []int{0, 0, 0, 0, 0, 1},
		},
		"linear multiple values": {
			create:     newLinear,
			values:     []float32{18, 40, 45, 19.99999, 27, 0.0000001},
			wantCounts: []int{0, 1, 2, 1, 0, 2, 0},
		},
		"exponential multiple values": {
			create:     newExponential,
			values:     []float32{101, 40, 45, 159.99999, 160.000001, 80},
			wantCounts: []int{0, 0, 0, 0, 2, 3, 1},
		},
		"explicit multiple values": {
			create:     newExplicit,
			values:     []float32{0, -10, 1, 25, 49, -2},
			wantCounts: []int{0, 1, 1, 2, 2, 0},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h := test.create(t)
			for _, v := range test.values {
				h.AddValue(v)
			}

			assert.Equal(t, test.wantCounts, h.BinCounts())
		})
	}
}

func TestHistogram_Clear(t *testing.T) {
	tests := map[string]struct {
		create func(t *testing.T) *Histogram
	}{
		"linear":      {create: newLinear},
		"exponential": {create: newExponential},
		"explicit":    {create: newExplicit},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h := test.create(t)
			bins := h.Bins()

			for v := float32(-20); v < 200; v += 3 {
				h.AddValue(v)
			}
			assert.NotEqual(t, make([]int, h.Len()), h.BinCounts())

			h.Clear()

			assert.Equal(t, make([]int, h.Len()), h.BinCounts())
			assert.Equal(t, bins, h.Bins())
		})
	}
}

func TestHistogram_BinsAreCopies(t *testing.T) {
	h := newLinear(t)

	bins := h.Bins()
	bins[1] = 42
	counts := h.BinCounts()
	counts[1] = 42

	assert.Equal(t, float32(0), h.Bins()[1])
	assert.Equal(t, 0, h.BinCounts()[1])
}

func TestFromSpec(t *testing.T) {
	tests := map[string]struct {
		spec     decl.HistogramBinSpec
		wantBins []float32
	}{
		"linear": {
			spec:     decl.LinearBins(0, 50, 5),
			wantBins: []float32{Underflow, 0, 10, 20, 30, 40, 50},
		},
		"exponential": {
			spec:     decl.ExponentialBins(5, 160, 5),
			wantBins: []float32{Underflow, 5, 10, 20, 40, 80, 160},
		},
		"explicit": {
			spec:     decl.ExplicitBins(1, 2, 3),
			wantBins: []float32{Underflow, 1, 2, 3},
		},
		"linear single bucket": {
			spec:     decl.LinearBins(1, 2, 1),
			wantBins: []float32{Underflow, 1, 2},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			h, err := FromSpec(test.spec)
			require.NoError(t, err)

			assert.Equal(t, test.wantBins, h.Bins())
		})
	}
}
