// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"os"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"
)

// Options select how a bundle is stored. Zero values are taken from the path:
// "resolved.cbor.zst" is zstd compressed CBOR.
type Options struct {
	Format      Format
	Compression Compression
}

func (o Options) resolve(path string) Options {
	c, inner := CompressionFromPath(path)
	if o.Compression == "" {
		o.Compression = c
	}
	if o.Format == "" {
		o.Format = FormatFromPath(inner)
	}
	return o
}

// Save encodes, compresses and writes res to path. It reports whether the
// file was written.
func Save(path string, res *catalog.Resolved, opts Options) (bool, error) {
	opts = opts.resolve(path)

	bs, err := Encode(res, opts.Format)
	if err != nil {
		return false, err
	}
	if bs, err = Compress(bs, opts.Compression); err != nil {
		return false, err
	}

	return WriteFile(path, bs)
}

// Load reads a bundle written by Save and verifies its digest.
func Load(path string, opts Options) (*catalog.Resolved, error) {
	opts = opts.resolve(path)

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bs, err = Decompress(bs, opts.Compression); err != nil {
		return nil, err
	}

	return Decode(bs, opts.Format)
}
