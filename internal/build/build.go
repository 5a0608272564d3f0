// SPDX-License-Identifier: MIT
// Package build holds version information injected at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/spmat/internal/build.Version=v1.0.0"
package build

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
