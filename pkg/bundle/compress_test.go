// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("METRIC_TYPE_COUNTER app.value_crash_count\n"), 64)

	tests := map[string]struct {
		c          Compression
		wantSmall  bool
		wantSameIn bool
	}{
		"none": {c: CompressionNone, wantSameIn: true},
		"zstd": {c: CompressionZstd, wantSmall: true},
		"lz4":  {c: CompressionLZ4, wantSmall: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			bs, err := Compress(data, test.c)
			require.NoError(t, err)

			if test.wantSameIn {
				assert.Equal(t, data, bs)
			}
			if test.wantSmall {
				assert.Less(t, len(bs), len(data))
			}

			again, err := Compress(data, test.c)
			require.NoError(t, err)
			assert.Equal(t, bs, again)

			got, err := Decompress(bs, test.c)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	for _, c := range []Compression{CompressionZstd, CompressionLZ4} {
		_, err := Decompress([]byte("not compressed at all"), c)
		assert.Error(t, err, c)
	}
	_, err := Compress(nil, "brotli")
	assert.Error(t, err)
}

func TestCompressionFromPath(t *testing.T) {
	tests := map[string]struct {
		path      string
		want      Compression
		wantInner string
	}{
		"zst":   {path: "out/resolved.cbor.zst", want: CompressionZstd, wantInner: "out/resolved.cbor"},
		"zstd":  {path: "resolved.json.zstd", want: CompressionZstd, wantInner: "resolved.json"},
		"lz4":   {path: "resolved.yaml.lz4", want: CompressionLZ4, wantInner: "resolved.yaml"},
		"plain": {path: "resolved.json", want: CompressionNone, wantInner: "resolved.json"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, inner := CompressionFromPath(test.path)
			assert.Equal(t, test.want, c)
			assert.Equal(t, test.wantInner, inner)
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Compression
		wantErr bool
	}{
		"empty":   {input: "", want: CompressionNone},
		"none":    {input: "none", want: CompressionNone},
		"zst":     {input: "ZST", want: CompressionZstd},
		"lz4":     {input: "lz4", want: CompressionLZ4},
		"unknown": {input: "gzip", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := ParseCompression(test.input)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	tests := map[string]struct {
		file string
		opts Options
	}{
		"cbor zstd from path": {file: "resolved.cbor.zst"},
		"yaml lz4 from path":  {file: "resolved.yml.lz4"},
		"json plain":          {file: "resolved.json"},
		"explicit options":    {file: "resolved.bin", opts: Options{Format: FormatCBOR, Compression: CompressionZstd}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.file)
			res := testResolved(t)

			written, err := Save(path, res, test.opts)
			require.NoError(t, err)
			assert.True(t, written)

			written, err = Save(path, res, test.opts)
			require.NoError(t, err)
			assert.False(t, written)

			got, err := Load(path, test.opts)
			require.NoError(t, err)
			assert.Equal(t, res, got)
		})
	}
}

func TestLoad_WrongCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolved.cbor")
	_, err := Save(path, testResolved(t), Options{})
	require.NoError(t, err)

	_, err = Load(path, Options{Compression: CompressionZstd})
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
