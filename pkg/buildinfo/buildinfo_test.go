// SPDX-License-Identifier: GPL-3.0-or-later

package buildinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "version="+Version)
	assert.Contains(t, info, "go="+runtime.Version())
}
