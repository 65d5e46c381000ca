// Package buildinfo exposes version metadata injected at link time.
//
// The values are set via -ldflags, for example:
//
//	go build -ldflags "-X 'github.com/pranayk/reflections/internal/buildinfo.buildVersion=v1.0.0'"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
