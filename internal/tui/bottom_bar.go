package tui

import (
	"strings"

	"github.com/MKhiriev/thoughts/internal/navigation"
)

var tabOrder = []navigation.Tab{
	navigation.TabHome,
	navigation.TabEditor,
	navigation.TabSettings,
	navigation.TabSearch,
}

func renderBottomBar(active navigation.Tab) string {
	parts := make([]string, 0, len(tabOrder))
	for _, tab := range tabOrder {
		if tab == active {
			parts = append(parts, activeTabStyle.Render("["+tab.String()+"]"))
			continue
		}
		parts = append(parts, tabStyle.Render(" "+tab.String()+" "))
	}
	return "  " + strings.Join(parts, "  ")
}
