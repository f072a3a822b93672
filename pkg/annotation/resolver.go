// SPDX-License-Identifier: GPL-3.0-or-later

package annotation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"
)

var ErrUnknownRestrictionCategory = errors.New("annotation: unknown restriction category")

type Config struct {
	// StrictRestrictionCategory turns an unknown RESTRICTION_CATEGORY value
	// into an error instead of an empty symbol.
	StrictRestrictionCategory bool
}

type Resolver struct {
	*logger.Logger
	strict bool
}

func New(cfg Config) *Resolver {
	return &Resolver{
		Logger: logger.New().With(slog.String("component", "annotation resolver")),
		strict: cfg.StrictRestrictionCategory,
	}
}

var defaultResolver = New(Config{})

// Resolve runs the lenient default resolver.
func Resolve(fieldIndex int, anns []decl.Annotation) (Set, error) {
	return defaultResolver.Resolve(fieldIndex, anns)
}

// Resolve turns the raw annotations of one field into an ordered Set.
//
// DEFAULT_STATE and TRIGGER_STATE_RESET are never emitted as they are. When both
// are present a TRIGGER_STATE_RESET entry carrying the default value is appended
// last, conditional on the field value being equal to the reset trigger.
func (r *Resolver) Resolve(fieldIndex int, anns []decl.Annotation) (Set, error) {
	set := Set{FieldIndex: fieldIndex}

	var defaultState, resetState *int
	for _, a := range anns {
		switch a.ID {
		case decl.AnnotationDefaultState:
			if defaultState == nil {
				v := a.IntValue
				defaultState = &v
			}
		case decl.AnnotationTriggerStateReset:
			if resetState == nil {
				v := a.IntValue
				resetState = &v
			}
		}
	}

	for _, a := range anns {
		if a.ID == decl.AnnotationDefaultState || a.ID == decl.AnnotationTriggerStateReset {
			continue
		}

		e := Entry{
			ID:        a.ID,
			Name:      a.ID.String(),
			Kind:      a.Kind,
			IntValue:  a.IntValue,
			BoolValue: a.BoolValue,
		}

		if a.ID == decl.AnnotationRestrictionCategory {
			sym, ok := RestrictionSymbol(a.IntValue)
			if !ok {
				if r.strict {
					return Set{}, fmt.Errorf("%w: %d (field %d)", ErrUnknownRestrictionCategory, a.IntValue, fieldIndex)
				}
				r.Warningf("field %d: unknown restriction category %d, emitting empty symbol", fieldIndex, a.IntValue)
			}
			e.Symbol = sym
		}

		set.Entries = append(set.Entries, e)
	}

	if defaultState != nil && resetState != nil {
		set.Entries = append(set.Entries, Entry{
			ID:        decl.AnnotationTriggerStateReset,
			Name:      decl.AnnotationTriggerStateReset.String(),
			Kind:      decl.AnnotationKindInt,
			IntValue:  *defaultState,
			Condition: &Condition{FieldIndex: fieldIndex, Equals: *resetState},
		})
	}

	return set, nil
}
