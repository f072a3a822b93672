// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
	"github.com/netdata/netdata/go/statsgen/pkg/decl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolved(t *testing.T) *catalog.Resolved {
	cat := &decl.Catalog{
		Metrics: []decl.MetricDeclaration{
			{ID: "app.value_startup_latency", Kind: decl.MetricHistogramWithUID},
			{ID: "app.value_crash_count", Kind: decl.MetricCounter},
		},
		Atoms: []decl.Atom{
			{
				Name:       "screen_state_changed",
				Code:       29,
				Message:    "ScreenStateChanged",
				Restricted: true,
				Annotations: []decl.Annotation{
					decl.IntAnnotation(decl.AnnotationRestrictionCategory, 2),
				},
				Fields: []decl.AtomField{
					{Index: 1, Name: "state", Type: decl.FieldEnum,
						EnumValues: map[int]string{0: "UNKNOWN", 1: "OFF", 2: "ON"},
						Annotations: []decl.Annotation{
							decl.BoolAnnotation(decl.AnnotationExclusiveState, true),
							decl.IntAnnotation(decl.AnnotationDefaultState, 0),
							decl.IntAnnotation(decl.AnnotationTriggerStateReset, 2),
						}},
					{Index: 2, Name: "brightness", Type: decl.FieldFloat,
						Histogram: &decl.HistogramBinSpec{Strategy: decl.BinExplicit, Boundaries: []float32{-10, -7, 0, 19, 100}}},
					{Index: 3, Name: "latency", Type: decl.FieldLong,
						Histogram: &decl.HistogramBinSpec{Strategy: decl.BinExponential, Min: 5, Max: 160, Count: 5}},
				},
			},
		},
	}

	res, err := catalog.Resolve(context.Background(), cat, catalog.Config{Target: catalog.TargetJava})
	require.NoError(t, err)
	return res
}

func TestEncodeDecode(t *testing.T) {
	tests := map[string]struct {
		format Format
	}{
		"json": {format: FormatJSON},
		"yaml": {format: FormatYAML},
		"cbor": {format: FormatCBOR},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res := testResolved(t)

			bs, err := Encode(res, test.format)
			require.NoError(t, err)

			got, err := Decode(bs, test.format)
			require.NoError(t, err)
			assert.Equal(t, res, got)

			again, err := Encode(got, test.format)
			require.NoError(t, err)
			assert.Equal(t, bs, again)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(testResolved(t), FormatCBOR)
	require.NoError(t, err)
	b, err := Encode(testResolved(t), FormatCBOR)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncode_JSONIsReadable(t *testing.T) {
	bs, err := Encode(testResolved(t), FormatJSON)
	require.NoError(t, err)

	s := string(bs)
	assert.Contains(t, s, `"kind": "histogram_with_uid"`)
	assert.Contains(t, s, `"type": "enum"`)
	assert.Contains(t, s, `"symbol": "RESTRICTION_CATEGORY_SYSTEM_INTELLIGENCE"`)
	assert.Contains(t, s, `"strategy": "exponential"`)
}

func TestDecode_DigestMismatch(t *testing.T) {
	res := testResolved(t)
	res.Atoms[0].Code = 30

	bs, err := Encode(res, FormatJSON)
	require.NoError(t, err)

	_, err = Decode(bs, FormatJSON)
	assert.ErrorIs(t, err, ErrDigestMismatch)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), Format("toml"))
	assert.Error(t, err)

	_, err = Encode(testResolved(t), Format("toml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Format
		wantErr  bool
	}{
		"json":    {input: "json", expected: FormatJSON},
		"yml":     {input: "yml", expected: FormatYAML},
		"CBOR":    {input: "CBOR", expected: FormatCBOR},
		"unknown": {input: "xml", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := ParseFormat(test.input)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, f)
		})
	}

	assert.Equal(t, FormatCBOR, FormatFromPath("out/resolved.cbor"))
	assert.Equal(t, FormatYAML, FormatFromPath("resolved.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("resolved.bin"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolved.json")

	written, err := WriteFile(path, []byte("first"))
	require.NoError(t, err)
	assert.True(t, written)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	mtime := fi.ModTime()

	written, err = WriteFile(path, []byte("first"))
	require.NoError(t, err)
	assert.False(t, written)

	fi, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, mtime, fi.ModTime())

	written, err = WriteFile(path, []byte("fifth"))
	require.NoError(t, err)
	assert.True(t, written)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fifth", string(bs))

	assert.FileExists(t, path+lockSuffix)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFile_MissingDir(t *testing.T) {
	_, err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), []byte("x"))
	assert.Error(t, err)
}
