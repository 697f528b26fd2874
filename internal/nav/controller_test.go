package nav

import "testing"

func TestNewControllerStartsAtDashboard(t *testing.T) {
	c := NewController(DefaultMenu())

	if c.ActivePage() != PageDashboard {
		t.Errorf("ActivePage() = %q, want %q", c.ActivePage(), PageDashboard)
	}
	if c.Selection() != nil {
		t.Errorf("Selection() = %v, want nil", c.Selection())
	}
}

func TestNavigateTo(t *testing.T) {
	tests := []struct {
		name       string
		page       Page
		wantMoved  bool
		wantActive Page
	}{
		{"known page", PageProducts, true, PageProducts},
		{"another known page", PageForecasts, true, PageForecasts},
		{"disabled page is a no-op", PageAnalytics, false, PageDashboard},
		{"unknown page is a no-op", Page("payroll"), false, PageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(DefaultMenu())
			if got := c.NavigateTo(tt.page); got != tt.wantMoved {
				t.Errorf("NavigateTo(%q) = %v, want %v", tt.page, got, tt.wantMoved)
			}
			if c.ActivePage() != tt.wantActive {
				t.Errorf("ActivePage() = %q, want %q", c.ActivePage(), tt.wantActive)
			}
		})
	}
}

func TestNavigateToDetailCarriesSelection(t *testing.T) {
	c := NewController(DefaultMenu())

	if !c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget") {
		t.Fatal("NavigateToDetail() = false, want true")
	}
	if c.ActivePage() != PageProductDetail {
		t.Errorf("ActivePage() = %q, want %q", c.ActivePage(), PageProductDetail)
	}

	sel := c.Selection()
	if sel == nil {
		t.Fatal("Selection() = nil after detail navigation")
	}
	if sel.Code != "SKU-123" || sel.Description != "Widget" {
		t.Errorf("Selection() = %+v, want SKU-123/Widget", sel)
	}
}

func TestSelectionClearedOnPlainNavigation(t *testing.T) {
	c := NewController(DefaultMenu())
	c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget")

	if !c.NavigateTo(PageInventory) {
		t.Fatal("NavigateTo(inventory) = false")
	}
	if c.Selection() != nil {
		t.Errorf("Selection() = %v after plain navigation, want nil", c.Selection())
	}
}

func TestSelectionSurvivesFailedNavigation(t *testing.T) {
	c := NewController(DefaultMenu())
	c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget")

	// A refused navigation must not disturb the current state.
	c.NavigateTo(PageAnalytics)

	if c.ActivePage() != PageProductDetail {
		t.Errorf("ActivePage() = %q, want detail page still active", c.ActivePage())
	}
	if c.Selection() == nil {
		t.Error("Selection() = nil after refused navigation")
	}
}

func TestNavigateBackClearsSelection(t *testing.T) {
	c := NewController(DefaultMenu())
	c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget")

	if !c.NavigateBack(PageProducts) {
		t.Fatal("NavigateBack(products) = false")
	}
	if c.ActivePage() != PageProducts {
		t.Errorf("ActivePage() = %q, want %q", c.ActivePage(), PageProducts)
	}
	if c.Selection() != nil {
		t.Errorf("Selection() = %v after back navigation, want nil", c.Selection())
	}
}

func TestBreadcrumbForPlainPage(t *testing.T) {
	c := NewController(DefaultMenu())
	c.NavigateTo(PageProducts)

	crumbs := c.Breadcrumb()
	if len(crumbs) != 1 {
		t.Fatalf("got %d crumbs, want 1", len(crumbs))
	}
	if crumbs[0].Label != "Products (BOM)" {
		t.Errorf("crumb label = %q, want %q", crumbs[0].Label, "Products (BOM)")
	}
	if crumbs[0].Interactive() {
		t.Error("single crumb should not be interactive")
	}
}

func TestBreadcrumbForDetailPage(t *testing.T) {
	c := NewController(DefaultMenu())
	c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget")

	crumbs := c.Breadcrumb()
	if len(crumbs) != 2 {
		t.Fatalf("got %d crumbs, want 2", len(crumbs))
	}
	if crumbs[0].Label != "Products (BOM)" {
		t.Errorf("parent crumb = %q, want %q", crumbs[0].Label, "Products (BOM)")
	}
	if !crumbs[0].Interactive() || crumbs[0].Target != PageProducts {
		t.Errorf("parent crumb target = %q, want interactive link to %q", crumbs[0].Target, PageProducts)
	}
	if crumbs[1].Label != "SKU-123 - Widget" {
		t.Errorf("selection crumb = %q, want %q", crumbs[1].Label, "SKU-123 - Widget")
	}
	if crumbs[1].Interactive() {
		t.Error("selection crumb should be static")
	}
}

func TestBreadcrumbForDetailWithoutSelection(t *testing.T) {
	// A detail page can only lose its selection through internal misuse;
	// the breadcrumb falls back to the static title rather than panic.
	c := NewController(DefaultMenu())
	c.NavigateToDetail(PageProductDetail, "SKU-123", "Widget")
	c.selection = nil

	crumbs := c.Breadcrumb()
	if len(crumbs) != 1 {
		t.Fatalf("got %d crumbs, want 1", len(crumbs))
	}
	if crumbs[0].Label != "Product Detail" {
		t.Errorf("crumb = %q, want %q", crumbs[0].Label, "Product Detail")
	}
}
