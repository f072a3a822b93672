// SPDX-License-Identifier: GPL-3.0-or-later

// Package generator wires loading, resolution and output of a catalog.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/bundle"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog/loader"
	"github.com/netdata/netdata/go/statsgen/pkg/emit"
)

type (
	Config struct {
		CatalogDirs []string
		Include     []string
		Resolve     catalog.Config
		// Output is the bundle path, nothing is written when empty.
		Output string
		// Bundle format and compression default to the ones implied by Output.
		Bundle    bundle.Options
		Templates []Template
	}
	Template struct {
		Path   string
		Output string
	}
)

type Generator struct {
	*logger.Logger

	cfg Config
}

func New(cfg Config) *Generator {
	return &Generator{
		Logger: logger.New().With(slog.String("component", "generator")),
		cfg:    cfg,
	}
}

// Run loads the catalog, resolves it and writes the bundle and every template output.
func (g *Generator) Run(ctx context.Context) (*catalog.Resolved, error) {
	if len(g.cfg.CatalogDirs) == 0 {
		return nil, errors.New("generator: no catalog directories")
	}

	cat, err := loader.Load(g.cfg.CatalogDirs, g.cfg.Include)
	if err != nil {
		return nil, err
	}
	g.Infof("loaded %d metrics and %d atoms from %v", len(cat.Metrics), len(cat.Atoms), g.cfg.CatalogDirs)

	res, err := catalog.Resolve(ctx, cat, g.cfg.Resolve)
	if err != nil {
		return nil, err
	}

	if g.cfg.Output != "" {
		if err := g.writeBundle(res); err != nil {
			return nil, err
		}
	}

	for _, tmpl := range g.cfg.Templates {
		if _, err := emit.RenderFile(tmpl.Path, tmpl.Output, res); err != nil {
			return nil, fmt.Errorf("generator: template '%s': %w", tmpl.Path, err)
		}
	}

	return res, nil
}

func (g *Generator) writeBundle(res *catalog.Resolved) error {
	written, err := bundle.Save(g.cfg.Output, res, g.cfg.Bundle)
	if err != nil {
		return fmt.Errorf("generator: write bundle: %w", err)
	}
	if written {
		g.Infof("wrote bundle '%s' (digest %x)", g.cfg.Output, res.Digest)
	} else {
		g.Infof("bundle '%s' is up to date", g.cfg.Output)
	}

	return nil
}
