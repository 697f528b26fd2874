package view

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stockdeck/stockdeck/internal/nav"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// ZoneCrumbPrefix marks interactive breadcrumb segments; the target page
// is appended to the prefix.
const ZoneCrumbPrefix = "crumb:"

// RenderBreadcrumb renders the header trail for the active page. The
// last segment is the current location; earlier interactive segments are
// links back to their pages.
func RenderBreadcrumb(crumbs []nav.Crumb, width int) string {
	th := styles.GetActiveTheme()

	parts := make([]string, 0, len(crumbs))
	for i, c := range crumbs {
		last := i == len(crumbs)-1
		switch {
		case c.Interactive() && !last:
			seg := th.BreadcrumbLink.Render(c.Label)
			parts = append(parts, zone.Mark(ZoneCrumbPrefix+string(c.Target), seg))
		case last:
			parts = append(parts, th.BreadcrumbCurrent.Render(c.Label))
		default:
			parts = append(parts, th.BreadcrumbSeparator.Render(c.Label))
		}
	}

	sep := th.BreadcrumbSeparator.Render(" › ")
	trail := strings.Join(parts, sep)

	rule := th.BreadcrumbSeparator.Render(strings.Repeat("─", max(width, 1)))
	return trail + "\n" + rule
}
