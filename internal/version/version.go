package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo describes how the running binary was built.
type BuildInfo struct {
	// godoctor's own release metadata
	Version   string
	SemVer    string
	BuildDate string
	GitCommit string

	// Toolchain that compiled the binary
	GoVersion string
	Compiler  string
	Platform  string

	// Module metadata embedded by the go command
	MainPath    string
	MainVersion string
	Settings    []Setting
	Deps        []Module
}

// Setting is one key=value build setting, e.g. CGO_ENABLED or vcs.revision.
type Setting struct {
	Key   string
	Value string
}

// Module represents a Go module dependency
type Module struct {
	Path    string
	Version string
	Replace string
}

// Reader returns the embedded build information, like debug.ReadBuildInfo.
type Reader func() (*debug.BuildInfo, bool)

// Get returns build information using debug.ReadBuildInfo.
func Get() BuildInfo {
	return GetFrom(debug.ReadBuildInfo)
}

// GetFrom returns build information from read. A binary built without
// module support yields only the runtime fields.
func GetFrom(read Reader) BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.Split(Version, "-")[0],
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	bi, ok := read()
	if !ok || bi == nil {
		return info
	}

	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	info.MainPath = bi.Main.Path
	info.MainVersion = bi.Main.Version

	for _, s := range bi.Settings {
		info.Settings = append(info.Settings, Setting{Key: s.Key, Value: s.Value})
		if s.Key == "vcs.revision" && info.GitCommit == "unknown" {
			info.GitCommit = s.Value
		}
	}

	for _, dep := range bi.Deps {
		m := Module{Path: dep.Path, Version: dep.Version}
		if dep.Replace != nil {
			m.Replace = dep.Replace.Path
			if dep.Replace.Version != "" {
				m.Replace += "@" + dep.Replace.Version
			}
		}
		info.Deps = append(info.Deps, m)
	}

	return info
}

// Setting returns the value of the build setting key.
func (b BuildInfo) Setting(key string) (string, bool) {
	for _, s := range b.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// Short returns the one-line version printed by --version.
func Short() string {
	info := Get()
	return fmt.Sprintf("godoctor %s (%s, built with %s for %s)",
		info.Version, shortCommit(info.GitCommit), info.GoVersion, info.Platform)
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
