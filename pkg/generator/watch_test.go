// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	tmp := filepath.Join(dir, "."+name+".tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, name)))
}

func TestGenerator_Watch(t *testing.T) {
	dir := t.TempDir()
	catDir := filepath.Join(dir, "catalog")
	require.NoError(t, os.Mkdir(catDir, 0755))
	writeCatalog(t, catDir, "a.yaml", "metrics:\n  - id: app.value_a\n    type: counter\n")

	g := New(Config{
		CatalogDirs: []string{catDir},
		Output:      filepath.Join(catDir, "resolved.json"),
	})

	runs := make(chan *catalog.Resolved, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- g.Watch(ctx, 20*time.Millisecond, func(res *catalog.Resolved, err error) {
			if err != nil {
				return
			}
			select {
			case runs <- res:
			default:
			}
		})
	}()

	waitMetrics := func(want int) {
		t.Helper()
		timeout := time.After(5 * time.Second)
		for {
			select {
			case res := <-runs:
				if len(res.Metrics) == want {
					return
				}
			case <-timeout:
				t.Fatalf("no run with %d metrics", want)
			}
		}
	}

	waitMetrics(1)

	writeCatalog(t, catDir, "b.yaml", "metrics:\n  - id: app.value_b\n    type: histogram\n")
	waitMetrics(2)

	require.NoError(t, os.Mkdir(filepath.Join(catDir, "nested"), 0755))
	time.Sleep(50 * time.Millisecond)
	writeCatalog(t, filepath.Join(catDir, "nested"), "c.yaml", "metrics:\n  - id: app.value_c\n    type: counter\n")
	waitMetrics(3)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestGenerator_Watch_MissingDir(t *testing.T) {
	g := New(Config{CatalogDirs: []string{filepath.Join(t.TempDir(), "missing")}})

	err := g.Watch(context.Background(), 0, nil)
	assert.Error(t, err)
}

func TestIgnored(t *testing.T) {
	outputs := New(Config{
		Output:    "out/resolved.json",
		Templates: []Template{{Path: "a.tmpl", Output: "out/A.java"}},
	}).outputs()

	tests := map[string]struct {
		path string
		want bool
	}{
		"catalog file":   {path: "catalog/a.yaml", want: false},
		"bundle":         {path: "out/resolved.json", want: true},
		"bundle lock":    {path: "out/resolved.json.lock", want: true},
		"template out":   {path: "./out/A.java", want: true},
		"hidden temp":    {path: "out/.resolved.json.123", want: true},
		"editor swap":    {path: "catalog/.a.yaml.swp", want: true},
		"template input": {path: "a.tmpl", want: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, ignored(test.path, outputs))
		})
	}
}
