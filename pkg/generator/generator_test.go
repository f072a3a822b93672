// SPDX-License-Identifier: GPL-3.0-or-later

package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/netdata/netdata/go/statsgen/pkg/bundle"
	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
	"github.com/netdata/netdata/go/statsgen/pkg/metricid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "resolved.cbor.zst")
	tmplOut := filepath.Join(dir, "Metrics.txt")

	g := New(Config{
		CatalogDirs: []string{"testdata/catalog"},
		Resolve:     catalog.Config{Target: catalog.TargetVendor},
		Output:      out,
		Templates:   []Template{{Path: "testdata/metrics.tmpl", Output: tmplOut}},
	})

	res, err := g.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Atoms, 2)
	assert.Equal(t, "app_start_latency", res.Atoms[0].Name)
	screen := res.Atoms[1]
	require.Len(t, screen.Annotations.Values, 1)
	assert.Equal(t, 0, screen.Annotations.Values[0].ValueIndex)

	decoded, err := bundle.Load(out, bundle.Options{})
	require.NoError(t, err)
	assert.Equal(t, res, decoded)

	rendered, err := os.ReadFile(tmplOut)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "APP_VALUE_STARTUP_LATENCY")
	assert.Contains(t, string(rendered), "METRIC_TYPE_COUNTER")

	again, err := New(g.cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.Digest, again.Digest)
}

func TestGenerator_Run_Errors(t *testing.T) {
	tests := map[string]struct {
		cfg Config
	}{
		"no catalog dirs": {
			cfg: Config{},
		},
		"missing catalog dir": {
			cfg: Config{CatalogDirs: []string{"testdata/missing"}},
		},
		"unsupported field type": {
			cfg: Config{
				CatalogDirs: []string{"testdata/unsupported"},
				Resolve:     catalog.Config{Target: catalog.TargetNative},
			},
		},
		"missing template": {
			cfg: Config{
				CatalogDirs: []string{"testdata/catalog"},
				Include:     []string{"*.yaml"},
				Templates:   []Template{{Path: "testdata/missing.tmpl", Output: "unused"}},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(test.cfg).Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestGenerator_Run_NoOutputs(t *testing.T) {
	res, err := New(Config{CatalogDirs: []string{"testdata/catalog"}}).Run(context.Background())
	require.NoError(t, err)

	m, ok := res.Metric("media.value_frames_dropped")
	require.True(t, ok)
	assert.Equal(t, metricid.Fingerprint("media.value_frames_dropped"), m.Fingerprint)
}
