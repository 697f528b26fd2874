// Package pages renders the content area for each navigable page. The
// shell owns which page is active; pages own only their local widget
// state (table cursors and the like) and report drill-down requests as
// messages for the shell to act on.
package pages

import (
	"fmt"
	"strings"

	"github.com/stockdeck/stockdeck/internal/nav"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// ViewProductMsg asks the shell to drill into a product's detail page.
// Emitted by the product table on enter.
type ViewProductMsg struct {
	Code        string
	Description string
}

// Static page bodies, rendered beneath the breadcrumb header. The list
// pages that have real widgets (products) are modeled separately.
var staticBodies = map[nav.Page]string{
	nav.PageDashboard: "Open stock alerts, inbound orders and forecast accuracy\nat a glance. Pick a section from the menu to begin.",
	nav.PagePurchaseOrders: "Purchase orders awaiting receipt.\n\n" +
		"PO-2107  Acme Fasteners     due 2026-09-02\n" +
		"PO-2108  Delta Plastics     due 2026-09-09\n" +
		"PO-2112  Nordwind Metals    due 2026-09-15",
	nav.PageInventory: "Inventory adjustments and stocktake sessions.\n\nNo stocktake in progress.",
	nav.PageSOH: "Stock on hand by warehouse.\n\n" +
		"MAIN   12,407 units across 312 SKUs\n" +
		"EAST    3,118 units across 121 SKUs",
	nav.PageForecasts: "Demand forecasts refresh nightly.\nLast refresh: 02:00 UTC, horizon 12 weeks.",
}

// RenderStatic renders a static page body, or a stub for pages without
// one. Width is the usable content width in columns.
func RenderStatic(p nav.Page, width int) string {
	th := styles.GetActiveTheme()
	body, ok := staticBodies[p]
	if !ok {
		body = fmt.Sprintf("Nothing to show for %s yet.", p)
	}
	return th.ContentBox.Width(width).Render(body)
}

// RenderDetail renders the product detail page from the selection
// context the shell carries for it.
func RenderDetail(sel *nav.SelectionContext, width int) string {
	th := styles.GetActiveTheme()
	if sel == nil {
		// A detail page with no selection has nothing to describe.
		return th.ContentBox.Width(width).Render(th.Subtitle.Render("No product selected."))
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(sel.Label()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Code         %s\n", sel.Code))
	b.WriteString(fmt.Sprintf("Description  %s\n", sel.Description))
	b.WriteString("\nBill of materials, supplier links and movement history\nload here once the data services are connected.")
	return th.ContentBox.Width(width).Render(b.String())
}
