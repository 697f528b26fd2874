package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// RenderDrawer renders the narrow-terminal navigation overlay: the menu
// in a panel on the left, the rest of the row shaded as a backdrop.
// Clicks inside the marked drawer zone reach the menu; the shell treats
// clicks anywhere else as a backdrop tap that closes the drawer.
func RenderDrawer(body string, drawerWidth, termWidth, termHeight int) string {
	th := styles.GetActiveTheme()

	panel := th.Drawer.
		Width(drawerWidth - 2).
		Height(termHeight - 2).
		Render(body)
	panel = zone.Mark(ZoneDrawer, panel)

	backdropWidth := termWidth - lipgloss.Width(panel)
	if backdropWidth <= 0 {
		return panel
	}

	shade := "░"
	if !th.Dark {
		shade = "▒"
	}
	column := strings.TrimSuffix(strings.Repeat(th.Backdrop.Render(strings.Repeat(shade, backdropWidth))+"\n", max(termHeight, 1)), "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, panel, column)
}
