// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the catalog file format.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(&File{})
	schema.Title = "statsgen catalog"

	bs, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(bs, '\n'), nil
}
