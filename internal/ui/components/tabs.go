package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eform/internal/ui/theme"
)

// Tabs renders a one-line tab bar with labels[active] highlighted.
func Tabs(labels []string, active int) string {
	cells := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			cells[i] = theme.TabActive.Render(l)
		} else {
			cells[i] = theme.TabInactive.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
