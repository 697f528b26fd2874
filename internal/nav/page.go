// Package nav implements the navigation domain for the stockdeck shell:
// the page catalog, the active-page controller with its breadcrumb
// derivation, the accordion disclosure model for sidebar groups, and the
// narrow-terminal drawer state. The package has no terminal dependencies
// so it can be tested in isolation from the TUI.
package nav

// Page identifies a top-level page of the dashboard. The set of pages is
// closed; unknown identifiers are ignored by the controller.
type Page string

const (
	PageDashboard      Page = "dashboard"
	PageProducts       Page = "products"
	PageProductDetail  Page = "product-detail"
	PagePurchaseOrders Page = "purchase-orders"
	PageInventory      Page = "inventory"
	PageForecasts      Page = "forecasts"
	PageSOH            Page = "soh"
	PageAnalytics      Page = "analytics"
	PageReporting      Page = "reporting"
)

// SelectionContext is the page-scoped parameter carried by detail pages,
// such as the product a detail view should render. It exists only while
// the active page requires it.
type SelectionContext struct {
	// Code is the identifying key, e.g. a product SKU.
	Code string
	// Description is an optional human-readable label for the code.
	Description string
}

// Label returns the breadcrumb label for the selection: "CODE - Description"
// when a description is present, otherwise just the code.
func (s SelectionContext) Label() string {
	if s.Description == "" {
		return s.Code
	}
	return s.Code + " - " + s.Description
}

// parameterized lists the pages that require a SelectionContext to render.
var parameterized = map[Page]bool{
	PageProductDetail: true,
}

// RequiresSelection reports whether the page needs a SelectionContext.
func RequiresSelection(p Page) bool {
	return parameterized[p]
}
