// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// RenderBuildInfo describes the client build and, when known, the version
// reported by the server.
func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Client version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nBuild date:     ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nBuild commit:   ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("fintrack", b.String(), "")
}
