// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wib

import (
	"runtime/debug"
	"testing"
)

func TestVersion(t *testing.T) {
	for _, tc := range []struct {
		name    string
		info    *debug.BuildInfo
		version string
		sum     string
	}{
		{name: "nil"},
		{
			name: "no-dep",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{Path: "example.com/other", Version: "v1.0.0"}},
			},
		},
		{
			name: "dep",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{Path: "github.com/go-lpc/wib", Version: "v0.1.0", Sum: "h1:xxx"}},
			},
			version: "v0.1.0",
			sum:     "h1:xxx",
		},
		{
			name: "replace-version",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{
					Path:    "github.com/go-lpc/wib",
					Version: "v0.1.0",
					Replace: &debug.Module{Version: "v0.2.0", Sum: "h1:yyy"},
				}},
			},
			version: "v0.2.0",
			sum:     "h1:yyy",
		},
		{
			name: "replace-path",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{
					Path:    "github.com/go-lpc/wib",
					Version: "v0.1.0",
					Replace: &debug.Module{Path: "../wib"},
				}},
			},
			version: "../wib",
		},
		{
			name: "replace-path-version",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{
					Path:    "github.com/go-lpc/wib",
					Version: "v0.1.0",
					Replace: &debug.Module{Path: "example.com/wib", Version: "v0.3.0", Sum: "h1:zzz"},
				}},
			},
			version: "example.com/wib v0.3.0",
			sum:     "h1:zzz",
		},
		{
			name: "replace-empty",
			info: &debug.BuildInfo{
				Deps: []*debug.Module{{
					Path:    "github.com/go-lpc/wib",
					Version: "v0.1.0",
					Replace: &debug.Module{},
				}},
			},
			version: "v0.1.0*",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			version, sum := versionOf(tc.info)
			if got, want := version, tc.version; got != want {
				t.Fatalf("invalid version: got=%q, want=%q", got, want)
			}
			if got, want := sum, tc.sum; got != want {
				t.Fatalf("invalid sum: got=%q, want=%q", got, want)
			}
		})
	}

	_, _ = Version()
}
