package models

import "strings"

// notAvailable stands in for build fields the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version stamp of the client binary, injected with
// -ldflags and shown in the settings overlay and the about page.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the given values; blank ones read back as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

// HasVersion reports whether a version was stamped into the binary.
func (a AppBuildInfo) HasVersion() bool {
	return a.version != ""
}

// Label renders "v1.2.0 (abc1234)", dropping whatever is missing.
func (a AppBuildInfo) Label() string {
	if a.version == "" {
		return notAvailable
	}
	label := "v" + strings.TrimPrefix(a.version, "v")
	if a.commit != "" {
		commit := a.commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		label += " (" + commit + ")"
	}
	return label
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
