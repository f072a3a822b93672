// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"errors"
	"fmt"
)

var ErrUnsupportedFieldType = errors.New("catalog: unsupported field type")

// FieldError reports a failure tied to one atom field.
type FieldError struct {
	Atom  string
	Field string
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("atom '%s' field '%s' (%d): %v", e.Atom, e.Field, e.Index, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
