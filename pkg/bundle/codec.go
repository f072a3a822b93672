// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/netdata/netdata/go/statsgen/pkg/catalog"

	"github.com/fxamacker/cbor/v2"
)

var ErrDigestMismatch = errors.New("bundle: digest mismatch")

var (
	// Core Deterministic Encoding: the same resolved catalog always produces the same bytes.
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	if cborEnc, err = opts.EncMode(); err != nil {
		panic("bundle: cbor encoder: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("bundle: cbor decoder: " + err.Error())
	}
}

// Encode serializes res. JSON output is indented and newline terminated.
func Encode(res *catalog.Resolved, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		bs, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(bs, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(res)
	case FormatCBOR:
		return cborEnc.Marshal(res)
	default:
		return nil, fmt.Errorf("bundle: unknown format '%s'", f)
	}
}

// Decode parses a bundle and checks its digest against the content.
func Decode(data []byte, f Format) (*catalog.Resolved, error) {
	var res catalog.Resolved
	var err error

	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &res)
	case FormatYAML:
		err = yaml.Unmarshal(data, &res)
	case FormatCBOR:
		err = cborDec.Unmarshal(data, &res)
	default:
		return nil, fmt.Errorf("bundle: unknown format '%s'", f)
	}
	if err != nil {
		return nil, fmt.Errorf("bundle: decode %s: %w", f, err)
	}

	ok, err := catalog.Verify(&res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDigestMismatch
	}

	return &res, nil
}
