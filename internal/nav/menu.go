package nav

// MenuItem is a single navigable entry in the sidebar. Items are immutable
// after the menu is built.
type MenuItem struct {
	ID       Page
	Label    string
	Icon     string
	Disabled bool
}

// MenuGroup is a collapsible container of items. Groups are mutually
// exclusive for disclosure purposes: at most one is expanded at a time
// (see AccordionModel).
type MenuGroup struct {
	ID    string
	Label string
	Icon  string
	Items []MenuItem
}

// DetailPage describes a page that is reachable only through a drill-down
// from a parent list page, never from the menu itself.
type DetailPage struct {
	ID     Page
	Parent Page
	Title  string
}

// Menu is the static catalog of top-level items, groups, and detail pages.
// Build it once at startup with DefaultMenu; the shell and the controller
// treat it as read-only.
type Menu struct {
	Items   []MenuItem
	Groups  []MenuGroup
	Details []DetailPage

	byPage   map[Page]MenuItem
	groupFor map[Page]string
	detail   map[Page]DetailPage
}

// NewMenu builds the lookup indexes for a catalog. Items listed in groups
// and at the top level are indexed by page id.
func NewMenu(items []MenuItem, groups []MenuGroup, details []DetailPage) *Menu {
	m := &Menu{
		Items:    items,
		Groups:   groups,
		Details:  details,
		byPage:   make(map[Page]MenuItem),
		groupFor: make(map[Page]string),
		detail:   make(map[Page]DetailPage),
	}
	for _, it := range items {
		m.byPage[it.ID] = it
	}
	for _, g := range groups {
		for _, it := range g.Items {
			m.byPage[it.ID] = it
			m.groupFor[it.ID] = g.ID
		}
	}
	for _, d := range details {
		m.detail[d.ID] = d
	}
	return m
}

// Item returns the menu item for a page and whether the page appears in
// the menu at all.
func (m *Menu) Item(p Page) (MenuItem, bool) {
	it, ok := m.byPage[p]
	return it, ok
}

// Detail returns the detail-page descriptor for a page, if it is one.
func (m *Menu) Detail(p Page) (DetailPage, bool) {
	d, ok := m.detail[p]
	return d, ok
}

// Known reports whether the page exists in the catalog, either as a menu
// item or as a detail page.
func (m *Menu) Known(p Page) bool {
	if _, ok := m.byPage[p]; ok {
		return true
	}
	_, ok := m.detail[p]
	return ok
}

// IsDisabled reports whether a page maps to a disabled menu item. Unknown
// pages are treated as disabled so they can never become active.
func (m *Menu) IsDisabled(p Page) bool {
	if it, ok := m.byPage[p]; ok {
		return it.Disabled
	}
	if _, ok := m.detail[p]; ok {
		return false
	}
	return true
}

// GroupFor returns the id of the group containing the page, or "" when the
// page is a top-level item or a detail page. The lookup exists so the
// shell can auto-expand the owning group when deep-linking is added.
func (m *Menu) GroupFor(p Page) string {
	return m.groupFor[p]
}

// Title returns the static title for a page: the menu label for regular
// pages, the configured title for detail pages, and "" for unknown ones.
func (m *Menu) Title(p Page) string {
	if it, ok := m.byPage[p]; ok {
		return it.Label
	}
	if d, ok := m.detail[p]; ok {
		return d.Title
	}
	return ""
}

// DefaultMenu returns the fixed stockdeck catalog. Analytics and Reporting
// ship disabled; there is no runtime configuration to enable them.
func DefaultMenu() *Menu {
	return NewMenu(
		[]MenuItem{
			{ID: PageDashboard, Label: "Dashboard", Icon: "◆"},
		},
		[]MenuGroup{
			{
				ID:    "operations",
				Label: "Operations",
				Icon:  "⚙",
				Items: []MenuItem{
					{ID: PageProducts, Label: "Products (BOM)", Icon: "▤"},
					{ID: PagePurchaseOrders, Label: "Purchase Orders", Icon: "▥"},
					{ID: PageInventory, Label: "Inventory", Icon: "▦"},
				},
			},
			{
				ID:    "system-data",
				Label: "System Data",
				Icon:  "≡",
				Items: []MenuItem{
					{ID: PageSOH, Label: "Stock on Hand", Icon: "▩"},
					{ID: PageForecasts, Label: "Forecasts", Icon: "◈"},
				},
			},
			{
				ID:    "insights",
				Label: "Insights",
				Icon:  "◉",
				Items: []MenuItem{
					{ID: PageAnalytics, Label: "Analytics", Icon: "◎", Disabled: true},
					{ID: PageReporting, Label: "Reporting", Icon: "◍", Disabled: true},
				},
			},
		},
		[]DetailPage{
			{ID: PageProductDetail, Parent: PageProducts, Title: "Product Detail"},
		},
	)
}
