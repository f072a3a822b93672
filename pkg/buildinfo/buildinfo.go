// SPDX-License-Identifier: GPL-3.0-or-later

package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version stores the generator's version number. It's set during the build process using build flags.
var Version = "v0.0.0"

// Info returns a one-line summary of the build: version, go version and vcs revision if known.
func Info() string {
	s := fmt.Sprintf("version=%s, go=%s", Version, runtime.Version())

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			rev := setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			s += ", revision=" + rev
		}
	}
	return s
}
