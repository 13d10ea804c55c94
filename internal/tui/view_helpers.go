package tui

import (
	"strings"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderOverlay draws body in a bordered box under the page it covers.
func renderOverlay(page, title, body string) string {
	box := overlayBoxStyle.Render(titleStyle.Render(title) + "\n\n" + body)
	return lipgloss.JoinVertical(lipgloss.Left, page, box)
}

// fitText shortens v to max runes, ending with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func cursor(selected bool) string {
	if selected {
		return selectedStyle.Render(">")
	}
	return " "
}

func pageTitle(title string) string {
	return app.AppName + " · " + title
}
