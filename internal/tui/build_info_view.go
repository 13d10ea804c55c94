package tui

import (
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(app.AppName)
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return b.String()
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	return renderPage(pageTitle("About"), renderBuildInfo(info), "esc: back")
}
