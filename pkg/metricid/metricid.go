// SPDX-License-Identifier: GPL-3.0-or-later

// Package metricid assigns stable 64-bit identities to express metric ids.
package metricid

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"

	"github.com/dgryski/go-farm"
)

var (
	ErrInvalidIDFormat      = errors.New("metricid: invalid metric id format")
	ErrDuplicateMetricID    = errors.New("metricid: duplicate metric id")
	ErrFingerprintCollision = errors.New("metricid: fingerprint collision")
	ErrUnknownMetricKind    = errors.New("metricid: unknown metric type")
)

// <prefix>.value_<name>, lower snake case on both sides of the dot.
var reID = regexp.MustCompile(`^[a-z]+[a-z_0-9]*[.]value_[a-z]+[a-z_0-9]*$`)

// Metric is a metric declaration with its resolved identity.
type Metric struct {
	ID          string          `json:"id" yaml:"id"`
	Fingerprint int64           `json:"fingerprint" yaml:"fingerprint"`
	Kind        decl.MetricKind `json:"kind" yaml:"kind"`
}

// Fingerprint returns the farmhash Fingerprint64 of id reinterpreted as int64,
// which is how consumers store it.
func Fingerprint(id string) int64 {
	return int64(farm.Fingerprint64([]byte(id)))
}

func ValidateID(id string) error {
	if !reID.MatchString(id) {
		return fmt.Errorf("%w: '%s' (want '<prefix>.value_<name>')", ErrInvalidIDFormat, id)
	}
	return nil
}

// Resolver validates a full metric catalog and assigns fingerprints.
type Resolver struct {
	fingerprint func(string) int64
}

func NewResolver() *Resolver {
	return &Resolver{fingerprint: Fingerprint}
}

// Resolve validates every id, rejects duplicates and fingerprint collisions,
// and returns one Metric per declaration sorted by id.
// The collision set is local to the call.
func (r *Resolver) Resolve(metrics []decl.MetricDeclaration) ([]Metric, error) {
	fp := r.fingerprint
	if fp == nil {
		fp = Fingerprint
	}

	kinds := make(map[string]decl.MetricKind, len(metrics))
	for _, m := range metrics {
		if err := ValidateID(m.ID); err != nil {
			return nil, err
		}
		if _, ok := kinds[m.ID]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateMetricID, m.ID)
		}
		if !m.Kind.Known() {
			return nil, fmt.Errorf("%w: metric '%s' has type %s", ErrUnknownMetricKind, m.ID, m.Kind)
		}
		kinds[m.ID] = m.Kind
	}

	ids := make([]string, 0, len(kinds))
	for id := range kinds {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	seen := make(map[int64]string, len(ids))
	var out []Metric

	for _, id := range ids {
		f := fp(id)
		if other, ok := seen[f]; ok {
			return nil, fmt.Errorf("%w: '%s' and '%s' share fingerprint %d", ErrFingerprintCollision, other, id, f)
		}
		seen[f] = id
		out = append(out, Metric{ID: id, Fingerprint: f, Kind: kinds[id]})
	}

	return out, nil
}

// Resolve runs a default resolver over metrics.
func Resolve(metrics []decl.MetricDeclaration) ([]Metric, error) {
	return NewResolver().Resolve(metrics)
}

// Index keys resolved metrics by id.
func Index(metrics []Metric) map[string]Metric {
	idx := make(map[string]Metric, len(metrics))
	for _, m := range metrics {
		idx[m.ID] = m
	}
	return idx
}

// Prefix returns the part of id before the ".value_" separator.
func Prefix(id string) string {
	prefix, _, _ := strings.Cut(id, ".")
	return prefix
}
