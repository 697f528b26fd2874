// Package tui provides the terminal user interface for stockdeck.
// This file contains layout-related constants and dimension calculation functions.
package tui

// Sidebar dimensions
const (
	// SidebarWidth is the default width of the sidebar panel.
	SidebarWidth = 32

	// SidebarMinWidth is the minimum configurable sidebar width.
	SidebarMinWidth = 20

	// SidebarMaxWidth is the maximum configurable sidebar width.
	SidebarMaxWidth = 60

	// NarrowTerminalThreshold is the terminal width below which the sidebar
	// collapses into the overlay drawer.
	NarrowTerminalThreshold = 80
)

// Layout offsets - these represent the space taken by fixed UI elements
const (
	// HeaderHeight is the breadcrumb header row plus its separator line.
	HeaderHeight = 2

	// HelpBarHeight is the help bar row plus its top margin.
	HelpBarHeight = 2

	// PanelGap is the gap between the sidebar and the content panel.
	PanelGap = 1

	// SidebarPadding is the horizontal padding plus border inside the sidebar.
	SidebarPadding = 4

	// ContentBoxPadding is the horizontal padding plus border inside content boxes.
	ContentBoxPadding = 6
)

// CalculateMainAreaDimensions returns the dimensions of the sidebar and
// content panels for a terminal size. Width 0 means the sidebar is hidden
// (narrow terminal, drawer mode).
func CalculateMainAreaDimensions(termWidth, termHeight, sidebarWidth, narrowThreshold int) (sidebar, content, mainHeight int) {
	mainHeight = termHeight - HeaderHeight - HelpBarHeight
	if mainHeight < 1 {
		mainHeight = 1
	}

	if narrowThreshold <= 0 {
		narrowThreshold = NarrowTerminalThreshold
	}
	if termWidth < narrowThreshold {
		return 0, termWidth, mainHeight
	}

	sidebar = sidebarWidth
	if sidebar <= 0 {
		sidebar = SidebarWidth
	}
	content = termWidth - sidebar - PanelGap
	if content < 1 {
		content = 1
	}
	return sidebar, content, mainHeight
}

// CalculateSidebarContentWidth returns the usable row width inside the
// sidebar box.
func CalculateSidebarContentWidth(sidebarWidth int) int {
	w := sidebarWidth - SidebarPadding
	if w < 1 {
		return 1
	}
	return w
}

// CalculateContentBoxWidth returns the width passed to content box styles.
func CalculateContentBoxWidth(availableWidth int) int {
	w := availableWidth - ContentBoxPadding
	if w < 1 {
		return 1
	}
	return w
}
