package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/expsearch/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	captionStyle = lipgloss.NewStyle().
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)

// StatusLine renders "Step n | Status: X" colored by how the step ended.
func StatusLine(theme Theme, step int, status search.Status) string {
	color := theme.Info
	switch {
	case status == search.StatusFound:
		color = theme.Success
	case status == search.StatusDone, status == search.StatusBinaryFailed, status == search.StatusEmpty:
		color = theme.Error
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	return style.Render(fmt.Sprintf("Step %d | Status: %s", step, status))
}

// Legend renders one colored swatch per role.
func Legend(theme Theme) string {
	entries := []struct {
		role  Role
		label string
	}{
		{RoleProbed, "probed"},
		{RoleProbe, "probe i"},
		{RoleWindow, "window"},
		{RoleMid, "mid"},
		{RoleFound, "found"},
	}
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "  "
		}
		out += lipgloss.NewStyle().Foreground(theme.Color(e.role)).Render("█") + " " + e.label
	}
	return out
}
