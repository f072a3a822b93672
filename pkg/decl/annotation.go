// SPDX-License-Identifier: GPL-3.0-or-later

package decl

import (
	"fmt"
	"strings"
)

// API levels the generated code may be gated on.
const (
	APILevelQ   = 29
	APILevelR   = 30
	APILevelS   = 31
	APILevelSV2 = 32
	APILevelT   = 33
	APILevelU   = 34
)

// AnnotationID is the wire id of an atom or field annotation.
type AnnotationID uint8

const (
	AnnotationIsUID AnnotationID = iota + 1
	AnnotationTruncateTimestamp
	AnnotationPrimaryField
	AnnotationExclusiveState
	AnnotationPrimaryFieldFirstUID
	AnnotationDefaultState
	AnnotationTriggerStateReset
	AnnotationStateNested
	AnnotationRestrictionCategory
	AnnotationFieldRestrictionPeripheralDeviceInfo
	AnnotationFieldRestrictionAppUsage
	AnnotationFieldRestrictionAppActivity
	AnnotationFieldRestrictionHealthConnect
	AnnotationFieldRestrictionAccessibility
	AnnotationFieldRestrictionSystemSearch
	AnnotationFieldRestrictionUserEngagement
	AnnotationFieldRestrictionAmbientSensing
	AnnotationFieldRestrictionDemographicClassification
)

// AnnotationKind is the value type an annotation carries.
type AnnotationKind uint8

const (
	AnnotationKindUnknown AnnotationKind = iota
	AnnotationKindInt
	AnnotationKindBool
)

func (k AnnotationKind) String() string {
	switch k {
	case AnnotationKindInt:
		return "int"
	case AnnotationKindBool:
		return "bool"
	default:
		return "unknown"
	}
}

type annotationInfo struct {
	name     string
	apiLevel int
	kind     AnnotationKind
}

var annotationInfos = map[AnnotationID]annotationInfo{
	AnnotationIsUID:                                     {"IS_UID", APILevelS, AnnotationKindBool},
	AnnotationTruncateTimestamp:                         {"TRUNCATE_TIMESTAMP", APILevelS, AnnotationKindBool},
	AnnotationPrimaryField:                              {"PRIMARY_FIELD", APILevelS, AnnotationKindBool},
	AnnotationExclusiveState:                            {"EXCLUSIVE_STATE", APILevelS, AnnotationKindBool},
	AnnotationPrimaryFieldFirstUID:                      {"PRIMARY_FIELD_FIRST_UID", APILevelS, AnnotationKindBool},
	AnnotationDefaultState:                              {"DEFAULT_STATE", APILevelS, AnnotationKindInt},
	AnnotationTriggerStateReset:                         {"TRIGGER_STATE_RESET", APILevelS, AnnotationKindInt},
	AnnotationStateNested:                               {"STATE_NESTED", APILevelS, AnnotationKindBool},
	AnnotationRestrictionCategory:                       {"RESTRICTION_CATEGORY", APILevelU, AnnotationKindInt},
	AnnotationFieldRestrictionPeripheralDeviceInfo:      {"FIELD_RESTRICTION_PERIPHERAL_DEVICE_INFO", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionAppUsage:                  {"FIELD_RESTRICTION_APP_USAGE", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionAppActivity:               {"FIELD_RESTRICTION_APP_ACTIVITY", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionHealthConnect:             {"FIELD_RESTRICTION_HEALTH_CONNECT", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionAccessibility:             {"FIELD_RESTRICTION_ACCESSIBILITY", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionSystemSearch:              {"FIELD_RESTRICTION_SYSTEM_SEARCH", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionUserEngagement:            {"FIELD_RESTRICTION_USER_ENGAGEMENT", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionAmbientSensing:            {"FIELD_RESTRICTION_AMBIENT_SENSING", APILevelU, AnnotationKindBool},
	AnnotationFieldRestrictionDemographicClassification: {"FIELD_RESTRICTION_DEMOGRAPHIC_CLASSIFICATION", APILevelU, AnnotationKindBool},
}

// String returns the constant name without any target prefix, e.g. IS_UID.
func (id AnnotationID) String() string {
	if info, ok := annotationInfos[id]; ok {
		return info.name
	}
	return fmt.Sprintf("ANNOTATION_%d", uint8(id))
}

func (id AnnotationID) Valid() bool {
	_, ok := annotationInfos[id]
	return ok
}

// APILevel is the first API level that understands the annotation.
func (id AnnotationID) APILevel() int {
	return annotationInfos[id].apiLevel
}

// Kind is the value type the annotation is declared with.
func (id AnnotationID) Kind() AnnotationKind {
	return annotationInfos[id].kind
}

// AnnotationIDs returns every known annotation id in ascending order.
func AnnotationIDs() []AnnotationID {
	ids := make([]AnnotationID, 0, len(annotationInfos))
	for id := AnnotationIsUID; id <= AnnotationFieldRestrictionDemographicClassification; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseAnnotationID accepts both "is_uid" and "IS_UID".
func ParseAnnotationID(s string) (AnnotationID, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for id, info := range annotationInfos {
		if info.name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown annotation '%s'", s)
}

// Annotation is one raw annotation attached to an atom (field index 0) or to one of its fields.
type Annotation struct {
	ID        AnnotationID
	Kind      AnnotationKind
	IntValue  int
	BoolValue bool
}

func IntAnnotation(id AnnotationID, v int) Annotation {
	return Annotation{ID: id, Kind: AnnotationKindInt, IntValue: v}
}

func BoolAnnotation(id AnnotationID, v bool) Annotation {
	return Annotation{ID: id, Kind: AnnotationKindBool, BoolValue: v}
}
