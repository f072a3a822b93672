// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v2"

	"github.com/netdata/netdata/go/statsgen/logger"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"

	"github.com/bmatcuk/doublestar/v4"
)

var ErrInvalidCatalog = errors.New("loader: invalid catalog")

var DefaultPatterns = []string{"**/*.yaml", "**/*.yml"}

type Loader struct {
	*logger.Logger

	// Patterns are doublestar patterns matched against paths relative to each directory.
	Patterns []string
}

func New(patterns ...string) *Loader {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Loader{
		Logger:   logger.New().With(slog.String("component", "catalog loader")),
		Patterns: patterns,
	}
}

// Load reads every matching file of dirs with New(patterns...).
func Load(dirs []string, patterns []string) (*decl.Catalog, error) {
	return New(patterns...).Load(dirs...)
}

// Load reads every file matching the loader patterns in dirs. Directories are
// read in the given order, files within a directory in lexical order.
func (l *Loader) Load(dirs ...string) (*decl.Catalog, error) {
	var cat decl.Catalog

	for _, dir := range dirs {
		files, err := l.findFiles(dir)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			l.Warningf("no catalog files found in '%s' (patterns %v)", dir, l.Patterns)
			continue
		}

		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			c, err := Parse(data, path)
			if err != nil {
				return nil, err
			}
			l.Debugf("loaded %d metrics and %d atoms from '%s'", len(c.Metrics), len(c.Atoms), path)

			cat.Metrics = append(cat.Metrics, c.Metrics...)
			cat.Atoms = append(cat.Atoms, c.Atoms...)
		}
		l.Infof("loaded %d catalog files from '%s'", len(files), dir)
	}

	if err := checkAtoms(cat.Atoms); err != nil {
		return nil, err
	}

	return &cat, nil
}

func (l *Loader) findFiles(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", dir)
	}

	var files []string

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, p := range l.Patterns {
			if ok, _ := doublestar.Match(p, rel); ok {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)

	return files, nil
}

// Parse decodes and validates one catalog file. source is used in error messages.
func Parse(data []byte, source string) (*decl.Catalog, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrInvalidCatalog, source, err)
	}

	cat, err := f.toCatalog()
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrInvalidCatalog, source, err)
	}

	return cat, nil
}

func checkAtoms(atoms []decl.Atom) error {
	names := make(map[string]bool)
	codes := make(map[int]string)

	for _, a := range atoms {
		if names[a.Name] {
			return fmt.Errorf("%w: atom '%s' declared more than once", ErrInvalidCatalog, a.Name)
		}
		names[a.Name] = true

		if other, ok := codes[a.Code]; ok {
			return fmt.Errorf("%w: atoms '%s' and '%s' share code %d", ErrInvalidCatalog, other, a.Name, a.Code)
		}
		codes[a.Code] = a.Name
	}

	return nil
}
