// SPDX-License-Identifier: GPL-3.0-or-later

package emit

import (
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"
	"github.com/netdata/netdata/go/statsgen/pkg/histogram"
	"github.com/netdata/netdata/go/statsgen/pkg/naming"

	"github.com/Masterminds/sprig/v3"
	"github.com/bmatcuk/doublestar/v4"
)

// FuncMap is sprig's text function map plus the generator helpers.
func FuncMap() template.FuncMap {
	fm := sprig.TxtFuncMap()

	extra := map[string]any{
		"constantName": naming.ConstantName,
		"pascalCase":   naming.SnakeToPascal,
		"camelCase":    naming.CamelCase,
		"annotationConstant": func(t catalog.Target, id decl.AnnotationID) string {
			return t.AnnotationPrefix() + id.String()
		},
		"annotationAPILevel": func(id decl.AnnotationID) int { return id.APILevel() },
		"histogramFactory":   funcHistogramFactory,
		"floatLiteral":       funcFloatLiteral,
		"isUnderflow":        func(v float32) bool { return v == histogram.Underflow },
		"match":              funcMatch,
	}

	for name, fn := range extra {
		fm[name] = fn
	}

	return fm
}

func funcHistogramFactory(spec decl.HistogramBinSpec) string {
	switch spec.Strategy {
	case decl.BinLinear:
		return "createLinearBins"
	case decl.BinExponential:
		return "createExponentialBins"
	case decl.BinExplicit:
		return "createExplicitBins"
	default:
		return ""
	}
}

// funcFloatLiteral formats v with the shortest float32 representation and an "f" suffix.
func funcFloatLiteral(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s + "f"
}

// funcMatch matches value against a doublestar ("dstar", "glob") or regexp ("re") pattern.
func funcMatch(typ, value, pattern string) bool {
	switch typ {
	case "glob", "dstar", "":
		ok, err := doublestar.Match(pattern, value)
		return err == nil && ok
	case "re":
		ok, err := regexp.MatchString(pattern, value)
		return err == nil && ok
	default:
		return false
	}
}
