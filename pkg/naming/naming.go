// SPDX-License-Identifier: GPL-3.0-or-later

// Package naming converts declaration names into identifiers used by generated code.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConstantName converts lower snake or camel case into upper snake case:
// "screenStateChanged" and "screen_state_changed" both become SCREEN_STATE_CHANGED.
// An underscore is inserted before an upper case letter that follows a lower case one.
func ConstantName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 4)

	underscoreNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if underscoreNext {
				sb.WriteByte('_')
				underscoreNext = false
			}
		case c >= 'a' && c <= 'z':
			c = 'A' + c - 'a'
			underscoreNext = true
		case c == '_':
			underscoreNext = false
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// SnakeToPascal upper cases the first letter of every underscore separated part
// and drops the underscores. The rest of each part is kept as is.
func SnakeToPascal(s string) string {
	upper := cases.Upper(language.Und)

	var sb strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		_, n := utf8.DecodeRuneInString(part)
		sb.WriteString(upper.String(part[:n]))
		sb.WriteString(part[n:])
	}

	return sb.String()
}

// CamelCase is SnakeToPascal with a lower case first letter.
func CamelCase(s string) string {
	p := SnakeToPascal(s)
	if p == "" {
		return p
	}
	_, n := utf8.DecodeRuneInString(p)
	return cases.Lower(language.Und).String(p[:n]) + p[n:]
}
