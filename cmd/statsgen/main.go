// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/buildinfo"
	"github.com/netdata/netdata/go/statsgen/pkg/bundle"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog/loader"
	"github.com/netdata/netdata/go/statsgen/pkg/cli"
	"github.com/netdata/netdata/go/statsgen/pkg/generator"
)

const envLogLevel = "STATSGEN_LOG_LEVEL"

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(s string, args ...interface{}) {}))

	opts := parseCLI()

	if opts.Version {
		fmt.Printf("statsgen, %s\n", buildinfo.Info())
		return
	}

	if opts.DumpSchema {
		bs, err := loader.Schema()
		if err != nil {
			logger.Errorf("dump schema: %v", err)
			os.Exit(1)
		}
		_, _ = os.Stdout.Write(bs)
		return
	}

	if lvl := os.Getenv(envLogLevel); lvl != "" {
		logger.Level.SetByName(lvl)
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g := generator.New(cfg)
	g.Debugf("statsgen: %s, log level %s", buildinfo.Info(), logger.Level.Name())

	if opts.Watch {
		if err := g.Watch(ctx, generator.DefaultWatchDebounce, nil); err != nil {
			g.Error(err.Error())
			cancel()
			os.Exit(1)
		}
		return
	}

	if _, err := g.Run(ctx); err != nil {
		g.Error(err.Error())
		cancel()
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		if !cli.IsPrinted(err) {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	return opt
}

func newConfig(opts *cli.Option) (generator.Config, error) {
	if err := opts.ExpandPaths(); err != nil {
		return generator.Config{}, err
	}

	target, err := catalog.ParseTarget(opts.Target)
	if err != nil {
		return generator.Config{}, err
	}

	var bopts bundle.Options
	if opts.Format != "" {
		if bopts.Format, err = bundle.ParseFormat(opts.Format); err != nil {
			return generator.Config{}, err
		}
	}
	if opts.Compress != "" {
		if bopts.Compression, err = bundle.ParseCompression(opts.Compress); err != nil {
			return generator.Config{}, err
		}
	}

	cfg := generator.Config{
		CatalogDirs: opts.CatalogDir,
		Include:     opts.Include,
		Resolve: catalog.Config{
			Target:                    target,
			MinAPILevel:               opts.MinAPILevel,
			StrictRestrictionCategory: opts.StrictRestriction,
			Workers:                   opts.Workers,
		},
		Output: opts.Output,
		Bundle: bopts,
	}
	for i, path := range opts.Template {
		cfg.Templates = append(cfg.Templates, generator.Template{Path: path, Output: opts.TemplateOut[i]})
	}

	return cfg, nil
}
