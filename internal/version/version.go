// Package version holds the release string, overridable at link time:
//
//	go build -ldflags "-X samplereport/internal/version.Version=1.2.3"
package version

var Version = "0.3.0"
