// Package version reports the jsxmerge build and the defaults it merges with.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"jsxmerge/pkg/merge"
)

// Set at build time, e.g.
// go build -ldflags "-X 'jsxmerge/pkg/version.Version=1.2.3' -X 'jsxmerge/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes a jsxmerge binary.
type Info struct {
	Version    string
	GitCommit  string
	BuildTime  string
	GoVersion  string
	Platform   string   // GOOS/GOARCH
	Extensions []string // file suffixes merged when --ext is not given
	IgnoreDirs []string // directory names pruned when --ignore is not given
	Output     string   // default output file
}

// Get returns the running binary's Info.
func Get() Info {
	return Info{
		Version:    Version,
		GitCommit:  Commit,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Extensions: merge.DefaultExtensions(),
		IgnoreDirs: merge.DefaultIgnoreDirs(),
		Output:     merge.DefaultOutput,
	}
}

// String renders Info as the two lines printed by `jsxmerge version`:
//
//	jsxmerge version 1.2.3 (commit: abcdefg) built at 2026-10-17T15:04:05Z with go1.24.0 on linux/amd64
//	defaults: extensions .jsx,.js; ignoring node_modules,.git,dist,build; output merged_jsx_files.txt
func (i Info) String() string {
	return fmt.Sprintf(
		"jsxmerge version %s (commit: %s) built at %s with %s on %s\ndefaults: extensions %s; ignoring %s; output %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform,
		strings.Join(i.Extensions, ","), strings.Join(i.IgnoreDirs, ","), i.Output,
	)
}
