// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var compressionSuffixes = []struct {
	suffix string
	c      Compression
}{
	{".zst", CompressionZstd},
	{".zstd", CompressionZstd},
	{".lz4", CompressionLZ4},
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use with EncodeAll and DecodeAll.
var (
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
)

func init() {
	var err error

	if zstdEnc, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault)); err != nil {
		panic("bundle: zstd encoder: " + err.Error())
	}
	if zstdDec, err = zstd.NewReader(nil); err != nil {
		panic("bundle: zstd decoder: " + err.Error())
	}
}

func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionZstd, CompressionLZ4:
		return c, nil
	case "zst":
		return CompressionZstd, nil
	default:
		return "", fmt.Errorf("unknown bundle compression '%s' (want none, zstd or lz4)", s)
	}
}

// CompressionFromPath returns the compression implied by a trailing ".zst",
// ".zstd" or ".lz4" and the path without it.
func CompressionFromPath(path string) (Compression, string) {
	for _, v := range compressionSuffixes {
		if strings.HasSuffix(path, v.suffix) {
			return v.c, strings.TrimSuffix(path, v.suffix)
		}
	}
	return CompressionNone, path
}

func Compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case "", CompressionNone:
		return data, nil
	case CompressionZstd:
		return zstdEnc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("bundle: lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("bundle: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("bundle: unknown compression '%s'", c)
	}
}

func Decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case "", CompressionNone:
		return data, nil
	case CompressionZstd:
		bs, err := zstdDec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("bundle: zstd decompress: %w", err)
		}
		return bs, nil
	case CompressionLZ4:
		bs, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("bundle: lz4 decompress: %w", err)
		}
		return bs, nil
	default:
		return nil, fmt.Errorf("bundle: unknown compression '%s'", c)
	}
}
