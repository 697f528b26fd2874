package nav

// Crumb is one segment of the derived breadcrumb. A non-empty Target makes
// the segment interactive: activating it navigates back to that page.
type Crumb struct {
	Label  string
	Target Page
}

// Interactive reports whether activating the crumb should navigate.
func (c Crumb) Interactive() bool {
	return c.Target != ""
}

// Controller owns the active page and its page-scoped selection context.
// All mutations go through the Navigate* methods; navigating to a disabled
// or unknown page is a silent no-op rather than an error, because clicking
// a disabled menu entry is expected user behavior.
type Controller struct {
	menu      *Menu
	active    Page
	selection *SelectionContext
}

// NewController returns a controller pointed at the dashboard with no
// selection, the fixed default for a freshly mounted shell.
func NewController(menu *Menu) *Controller {
	return &Controller{menu: menu, active: PageDashboard}
}

// ActivePage returns the currently active page.
func (c *Controller) ActivePage() Page {
	return c.active
}

// Selection returns the current selection context, or nil when the active
// page does not carry one.
func (c *Controller) Selection() *SelectionContext {
	return c.selection
}

// NavigateTo activates a plain page. Disabled and unknown pages are
// ignored. Any selection context is cleared unless the destination itself
// requires one (in which case the caller should use NavigateToDetail).
// Returns true when the navigation took effect.
func (c *Controller) NavigateTo(p Page) bool {
	if !c.menu.Known(p) || c.menu.IsDisabled(p) {
		return false
	}
	c.active = p
	if !RequiresSelection(p) {
		c.selection = nil
	}
	return true
}

// NavigateToDetail activates a parameterized page with its selection
// context. Used by page collaborators requesting a drill-down, e.g. the
// product list's "view product" action.
func (c *Controller) NavigateToDetail(p Page, code, description string) bool {
	if !c.menu.Known(p) || c.menu.IsDisabled(p) {
		return false
	}
	c.active = p
	c.selection = &SelectionContext{Code: code, Description: description}
	return true
}

// NavigateBack returns to a parent page, clearing the selection. Driven by
// the breadcrumb's interactive segment.
func (c *Controller) NavigateBack(p Page) bool {
	if !c.menu.Known(p) || c.menu.IsDisabled(p) {
		return false
	}
	c.active = p
	c.selection = nil
	return true
}

// Breadcrumb derives the header segments for the active page. Detail pages
// with a live selection render two segments: the parent (interactive) and
// the selection label (static). Everything else renders the static title.
func (c *Controller) Breadcrumb() []Crumb {
	if c.selection != nil {
		if d, ok := c.menu.Detail(c.active); ok {
			return []Crumb{
				{Label: c.menu.Title(d.Parent), Target: d.Parent},
				{Label: c.selection.Label()},
			}
		}
	}
	return []Crumb{{Label: c.menu.Title(c.active)}}
}
