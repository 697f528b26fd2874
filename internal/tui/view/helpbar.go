package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// RenderHelpBar renders the bottom hint row from key bindings, skipping
// disabled ones.
func RenderHelpBar(bindings []key.Binding, width int) string {
	th := styles.GetActiveTheme()

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, th.HelpKey.Render("["+h.Key+"]")+" "+h.Desc)
	}

	return th.HelpBar.Render(truncate(strings.Join(parts, "  "), width))
}
