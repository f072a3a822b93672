// SPDX-License-Identifier: GPL-3.0-or-later

// Package emit renders user supplied text templates over a resolved catalog.
package emit

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/bundle"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
)

var log = logger.New().With(slog.String("component", "emit"))

// Render executes tmplText with data and writes the result to w.
func Render(w io.Writer, name, tmplText string, data any) error {
	tmpl, err := template.New(name).Funcs(FuncMap()).Option("missingkey=error").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("emit: parse template '%s': %w", name, err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("emit: execute template '%s': %w", name, err)
	}
	return nil
}

// RenderFile renders the template at tmplPath over res into outPath. The output
// file is left untouched when the rendered content did not change.
func RenderFile(tmplPath, outPath string, res *catalog.Resolved) (bool, error) {
	bs, err := os.ReadFile(tmplPath)
	if err != nil {
		return false, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, filepath.Base(tmplPath), string(bs), res); err != nil {
		return false, err
	}

	written, err := bundle.WriteFile(outPath, buf.Bytes())
	if err != nil {
		return false, err
	}
	if written {
		log.Infof("rendered '%s' into '%s'", tmplPath, outPath)
	} else {
		log.Debugf("'%s' is up to date", outPath)
	}

	return written, nil
}
