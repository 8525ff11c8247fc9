// Package buildinfo carries values stamped at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/hrmsync/internal/buildinfo.APIURL=https://hr.example.com"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"

	// APIURL is the build-time backend endpoint. It takes precedence over the
	// URL stored in settings.
	APIURL = ""
)

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
