// Package view renders the shell's chrome: sidebar rows, breadcrumb
// header, help bar and the narrow-terminal drawer. Render functions are
// pure string builders over the active theme; all state lives in the
// shell model that calls them.
package view

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/stockdeck/stockdeck/internal/nav"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// Bubblezone IDs for clickable sidebar regions. Row zones append the
// page, group or theme identifier to the prefix.
const (
	ZoneItemPrefix   = "nav:item:"
	ZoneGroupPrefix  = "nav:group:"
	ZoneThemesHeader = "nav:themes"
	ZoneThemePrefix  = "nav:theme:"
	ZoneDrawer       = "nav:drawer"
)

// RenderItemRow renders a navigable menu entry. Disabled entries render
// muted and still get a zone so clicks can be swallowed as no-ops.
func RenderItemRow(item nav.MenuItem, active, selected bool, indent, width int) string {
	th := styles.GetActiveTheme()

	style := th.MenuItem
	switch {
	case item.Disabled:
		style = th.MenuItemDisabled
	case active:
		style = th.MenuItemActive
	}

	label := item.Label
	if item.Icon != "" {
		label = item.Icon + " " + label
	}
	if item.Disabled {
		label += " (soon)"
	}

	pad := strings.Repeat(" ", indent)
	row := pad + style.Render(truncate(label, width-indent))
	if selected {
		row = pad + cursorMark() + style.Render(truncate(label, width-indent-2))
	}
	return zone.Mark(ZoneItemPrefix+string(item.ID), row)
}

// RenderGroupHeader renders a collapsible group header with a chevron
// reflecting its disclosure state.
func RenderGroupHeader(g nav.MenuGroup, open, selected bool, width int) string {
	th := styles.GetActiveTheme()

	style := th.GroupHeader
	if open {
		style = th.GroupHeaderOpen
	}

	chevron := "▸"
	if open {
		chevron = "▾"
	}
	label := chevron + " " + g.Icon + " " + g.Label

	row := style.Render(truncate(label, width))
	if selected {
		row = cursorMark() + style.Render(truncate(label, width-2))
	}
	return zone.Mark(ZoneGroupPrefix+g.ID, row)
}

// RenderThemesHeader renders the header of the nested Themes panel.
func RenderThemesHeader(open, selected bool, indent, width int) string {
	th := styles.GetActiveTheme()

	chevron := "▸"
	if open {
		chevron = "▾"
	}
	label := chevron + " ✎ Themes"

	pad := strings.Repeat(" ", indent)
	row := pad + th.NestedHeader.Render(truncate(label, width-indent))
	if selected {
		row = pad + cursorMark() + th.NestedHeader.Render(truncate(label, width-indent-2))
	}
	return zone.Mark(ZoneThemesHeader, row)
}

// RenderThemeRow renders one selectable theme inside the Themes panel.
func RenderThemeRow(name string, active, selected bool, indent, width int) string {
	th := styles.GetActiveTheme()

	style := th.ThemeRow
	if active {
		style = th.ThemeRowActive
	}

	label := name
	if active {
		label = "● " + label
	} else {
		label = "○ " + label
	}

	pad := strings.Repeat(" ", indent)
	row := pad + style.Render(truncate(label, width-indent))
	if selected {
		row = pad + cursorMark() + style.Render(truncate(label, width-indent-2))
	}
	return zone.Mark(ZoneThemePrefix+name, row)
}

// RenderSidebar wraps the assembled rows in the themed sidebar box.
func RenderSidebar(body string, width, height int) string {
	th := styles.GetActiveTheme()

	var b strings.Builder
	b.WriteString(th.SidebarTitle.Render("Stockdeck"))
	b.WriteString("\n")
	b.WriteString(body)

	return th.Sidebar.
		Width(width - 2).
		Height(height - 2).
		Render(b.String())
}

// cursorMark is the selection indicator prefix for the focused row.
func cursorMark() string {
	return styles.GetActiveTheme().Title.Render("❯ ")
}

// truncate shortens a label to the given display width, accounting for
// wide runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
