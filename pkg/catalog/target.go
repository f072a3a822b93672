// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"fmt"
	"strings"

	"github.com/netdata/netdata/go/statsgen/pkg/decl"
)

// Target is the language/API family generated code is written for.
type Target string

const (
	TargetNative Target = "native"
	TargetJava   Target = "java"
	TargetVendor Target = "vendor"
)

func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(s))); t {
	case TargetNative, TargetJava, TargetVendor:
		return t, nil
	default:
		return "", fmt.Errorf("unknown target '%s' (want native, java or vendor)", s)
	}
}

// FirstValueField is the first field index that maps to an atom value.
// Vendor atoms reserve field 1 for the reverse domain name.
func (t Target) FirstValueField() int {
	if t == TargetVendor {
		return 2
	}
	return 1
}

// AnnotationPrefix is the constant prefix generated code uses for annotation ids.
func (t Target) AnnotationPrefix() string {
	switch t {
	case TargetVendor:
		return "AnnotationId."
	case TargetNative:
		return "ASTATSLOG_ANNOTATION_ID_"
	default:
		return "StatsLog.ANNOTATION_ID_"
	}
}

// Supports reports whether fields of type ft can be written for the target.
// minAPILevel 0 means no minimum API level is configured.
func (t Target) Supports(ft decl.FieldType, minAPILevel int) bool {
	switch ft {
	case decl.FieldUnknown, decl.FieldObject:
		return false
	}

	switch t {
	case TargetNative:
		if ft == decl.FieldDouble {
			return false
		}
		if ft.IsRepeated() && minAPILevel > 0 && minAPILevel < decl.APILevelT {
			return false
		}
	case TargetVendor:
		if ft == decl.FieldDouble || ft == decl.FieldAttributionChain {
			return false
		}
	}
	return true
}
