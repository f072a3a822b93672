// SPDX-License-Identifier: GPL-3.0-or-later

package decl

import (
	"fmt"
	"strings"
)

// FieldType is the logical type of an atom field.
type FieldType int

const (
	FieldUnknown FieldType = iota
	FieldBool
	FieldInt
	FieldLong
	FieldFloat
	FieldDouble
	FieldString
	FieldBytes
	FieldEnum
	FieldObject
	FieldAttributionChain
	FieldBoolArray
	FieldIntArray
	FieldLongArray
	FieldFloatArray
	FieldDoubleArray
	FieldStringArray
	FieldEnumArray
)

var fieldTypeNames = map[FieldType]string{
	FieldBool:             "bool",
	FieldInt:              "int",
	FieldLong:             "long",
	FieldFloat:            "float",
	FieldDouble:           "double",
	FieldString:           "string",
	FieldBytes:            "bytes",
	FieldEnum:             "enum",
	FieldObject:           "object",
	FieldAttributionChain: "attribution_chain",
	FieldBoolArray:        "bool[]",
	FieldIntArray:         "int[]",
	FieldLongArray:        "long[]",
	FieldFloatArray:       "float[]",
	FieldDoubleArray:      "double[]",
	FieldStringArray:      "string[]",
	FieldEnumArray:        "enum[]",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseFieldType(s string) (FieldType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, v := range fieldTypeNames {
		if v == name {
			return t, nil
		}
	}
	return FieldUnknown, fmt.Errorf("unknown field type '%s'", s)
}

// IsRepeated does not include the attribution chain.
func (t FieldType) IsRepeated() bool {
	switch t {
	case FieldBoolArray, FieldIntArray, FieldLongArray, FieldFloatArray, FieldDoubleArray, FieldStringArray, FieldEnumArray:
		return true
	default:
		return false
	}
}

func (t FieldType) IsPrimitive() bool {
	switch t {
	case FieldBool, FieldInt, FieldLong, FieldFloat, FieldString, FieldEnum:
		return true
	default:
		return false
	}
}
