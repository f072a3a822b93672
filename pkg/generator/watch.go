// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"

	"github.com/fsnotify/fsnotify"
)

const DefaultWatchDebounce = 200 * time.Millisecond

// RunFunc is called after every run of Watch with the run result.
type RunFunc func(res *catalog.Resolved, err error)

// Watch runs the generator once, then again after every change under the
// catalog directories or to a template, until ctx is done. Changes closer
// together than debounce trigger a single run. A failed run is logged and
// watching goes on.
func (g *Generator) Watch(ctx context.Context, debounce time.Duration, onRun RunFunc) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("generator: create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for _, dir := range g.cfg.CatalogDirs {
		if err := watchTree(w, dir); err != nil {
			return fmt.Errorf("generator: watch '%s': %w", dir, err)
		}
	}
	for _, tmpl := range g.cfg.Templates {
		if err := w.Add(filepath.Dir(tmpl.Path)); err != nil {
			return fmt.Errorf("generator: watch '%s': %w", tmpl.Path, err)
		}
	}

	outputs := g.outputs()

	g.runOnce(ctx, onRun)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || ignored(ev.Name, outputs) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := watchTree(w, ev.Name); err != nil {
						g.Warningf("watch '%s': %v", ev.Name, err)
					}
				}
			}
			g.Debugf("change: %s", ev)

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			g.Warningf("watcher: %v", err)
		case <-fire:
			fire = nil
			g.runOnce(ctx, onRun)
		}
	}
}

func (g *Generator) runOnce(ctx context.Context, onRun RunFunc) {
	res, err := g.Run(ctx)
	if err != nil && ctx.Err() == nil {
		g.Errorf("run: %v", err)
	}
	if onRun != nil {
		onRun(res, err)
	}
}

// outputs are the absolute paths the generator writes, lock files included.
func (g *Generator) outputs() map[string]bool {
	paths := make(map[string]bool)
	add := func(path string) {
		if path == "" {
			return
		}
		if abs, err := filepath.Abs(path); err == nil {
			paths[abs] = true
			paths[abs+".lock"] = true
		}
	}

	add(g.cfg.Output)
	for _, tmpl := range g.cfg.Templates {
		add(tmpl.Output)
	}

	return paths
}

// ignored reports whether a change to path must not trigger a run: hidden
// files (editor swap files and our own temporary files) and generator outputs.
func ignored(path string, outputs map[string]bool) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	abs, err := filepath.Abs(path)
	return err == nil && outputs[abs]
}

func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
