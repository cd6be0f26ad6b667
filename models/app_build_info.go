// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo is the link-time version data of a binary. Empty values
// mean the binary was built without -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// String renders "version (commit, date)", leaving out unknown parts.
func (a AppBuildInfo) String() string {
	version := a.buildVersion
	if version == "" {
		version = "dev"
	}

	var extra []string
	for _, v := range []string{a.buildCommit, a.buildDate} {
		if v != "" {
			extra = append(extra, v)
		}
	}
	if len(extra) == 0 {
		return version
	}

	return version + " (" + strings.Join(extra, ", ") + ")"
}
