// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/annotation"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"
	"github.com/netdata/netdata/go/statsgen/pkg/histogram"
	"github.com/netdata/netdata/go/statsgen/pkg/metricid"

	"github.com/gohugoio/hashstructure"
	"github.com/sourcegraph/conc/pool"
)

type Config struct {
	Target Target
	// MinAPILevel is the lowest API level generated code must run on, 0 if unset.
	MinAPILevel               int
	StrictRestrictionCategory bool
	// Workers bounds concurrent atom resolution, defaults to GOMAXPROCS.
	Workers int
}

type Resolver struct {
	*logger.Logger

	cfg     Config
	metrics *metricid.Resolver
	annots  *annotation.Resolver
}

func NewResolver(cfg Config) *Resolver {
	if cfg.Target == "" {
		cfg.Target = TargetNative
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Resolver{
		Logger:  logger.New().With(slog.String("component", "catalog resolver")),
		cfg:     cfg,
		metrics: metricid.NewResolver(),
		annots:  annotation.New(annotation.Config{StrictRestrictionCategory: cfg.StrictRestrictionCategory}),
	}
}

// Resolve runs a resolver configured with cfg over cat.
func Resolve(ctx context.Context, cat *decl.Catalog, cfg Config) (*Resolved, error) {
	return NewResolver(cfg).Resolve(ctx, cat)
}

// Resolve assigns metric identities in one pass over the whole catalog, then
// resolves atoms concurrently. Atoms are returned sorted by code. The first
// error in atom order is returned.
func (r *Resolver) Resolve(ctx context.Context, cat *decl.Catalog) (*Resolved, error) {
	if cat == nil {
		cat = &decl.Catalog{}
	}

	metrics, err := r.metrics.Resolve(cat.Metrics)
	if err != nil {
		return nil, err
	}

	atoms := make([]ResolvedAtom, len(cat.Atoms))
	errs := make([]error, len(cat.Atoms))

	p := pool.New().WithMaxGoroutines(r.cfg.Workers)
	for i, atom := range cat.Atoms {
		p.Go(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			atoms[i], errs[i] = r.resolveAtom(atom)
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(atoms, func(a, b ResolvedAtom) int { return a.Code - b.Code })
	if len(atoms) == 0 {
		atoms = nil
	}

	res := &Resolved{
		Target:  r.cfg.Target,
		Metrics: metrics,
		Atoms:   atoms,
	}
	if res.Digest, err = digest(res); err != nil {
		return nil, fmt.Errorf("catalog: digest: %w", err)
	}

	r.Debugf("resolved %d metrics and %d atoms for target '%s' (digest %x)", len(res.Metrics), len(res.Atoms), res.Target, res.Digest)

	return res, nil
}

func (r *Resolver) resolveAtom(atom decl.Atom) (ResolvedAtom, error) {
	ra := ResolvedAtom{
		Name:       atom.Name,
		Code:       atom.Code,
		Message:    atom.Message,
		Restricted: atom.Restricted,
	}

	fields := slices.Clone(atom.Fields)
	slices.SortStableFunc(fields, func(a, b decl.AtomField) int { return a.Index - b.Index })

	for _, f := range fields {
		if !r.cfg.Target.Supports(f.Type, r.cfg.MinAPILevel) {
			return ResolvedAtom{}, &FieldError{
				Atom:  atom.Name,
				Field: f.Name,
				Index: f.Index,
				Err:   fmt.Errorf("%w: '%s' for target '%s'", ErrUnsupportedFieldType, f.Type, r.cfg.Target),
			}
		}

		rf := ResolvedField{
			Index:      f.Index,
			Name:       f.Name,
			Type:       f.Type,
			EnumValues: f.EnumValues,
		}
		if f.Histogram != nil {
			h, err := histogram.FromSpec(*f.Histogram)
			if err != nil {
				return ResolvedAtom{}, &FieldError{Atom: atom.Name, Field: f.Name, Index: f.Index, Err: err}
			}
			rf.Histogram = &ResolvedHistogram{Spec: *f.Histogram, Bins: h.Bins()}
		}
		ra.Fields = append(ra.Fields, rf)
	}

	annots, err := r.annots.ResolveAtom(atom, r.cfg.Target.FirstValueField())
	if err != nil {
		return ResolvedAtom{}, err
	}
	ra.Annotations = annots

	return ra, nil
}

func digest(r *Resolved) (uint64, error) {
	v := struct {
		Target  Target
		Metrics []metricid.Metric
		Atoms   []ResolvedAtom
	}{r.Target, r.Metrics, r.Atoms}
	return hashstructure.Hash(v, nil)
}

// Verify recomputes the digest of r and compares it with the stored one.
func Verify(r *Resolved) (bool, error) {
	d, err := digest(r)
	if err != nil {
		return false, err
	}
	return d == r.Digest, nil
}
