package models

import "fmt"

// AppBuildInfo is the build metadata stamped into the binaries by the linker.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String formats the metadata as "<version> (<date>, <commit>)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.version, a.date, a.commit)
}
