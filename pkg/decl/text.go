// SPDX-License-Identifier: GPL-3.0-or-later

package decl

import (
	"encoding"
	"fmt"
)

var (
	_ encoding.TextMarshaler   = MetricKind(0)
	_ encoding.TextUnmarshaler = (*MetricKind)(nil)
	_ encoding.TextMarshaler   = FieldType(0)
	_ encoding.TextUnmarshaler = (*FieldType)(nil)
	_ encoding.TextMarshaler   = AnnotationKind(0)
	_ encoding.TextUnmarshaler = (*AnnotationKind)(nil)
	_ encoding.TextMarshaler   = BinStrategy(0)
	_ encoding.TextUnmarshaler = (*BinStrategy)(nil)
)

func (k MetricKind) MarshalText() ([]byte, error) {
	if !k.Known() {
		return nil, fmt.Errorf("cannot marshal metric type %d", int(k))
	}
	return []byte(k.Name()), nil
}

func (k *MetricKind) UnmarshalText(text []byte) error {
	v, err := ParseMetricKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (t FieldType) MarshalText() ([]byte, error) {
	if _, ok := fieldTypeNames[t]; !ok {
		return nil, fmt.Errorf("cannot marshal field type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *FieldType) UnmarshalText(text []byte) error {
	v, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (k AnnotationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AnnotationKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "int":
		*k = AnnotationKindInt
	case "bool":
		*k = AnnotationKindBool
	case "unknown":
		*k = AnnotationKindUnknown
	default:
		return fmt.Errorf("unknown annotation kind '%s'", text)
	}
	return nil
}

func (s BinStrategy) MarshalText() ([]byte, error) {
	if s < BinLinear || s > BinExplicit {
		return nil, fmt.Errorf("cannot marshal bin strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *BinStrategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "linear":
		*s = BinLinear
	case "exponential":
		*s = BinExponential
	case "explicit":
		*s = BinExplicit
	default:
		return fmt.Errorf("unknown bin strategy '%s'", text)
	}
	return nil
}
