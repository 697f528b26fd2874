package view

import (
	"os"
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stockdeck/stockdeck/internal/nav"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	code := m.Run()
	zone.Close()
	os.Exit(code)
}

func TestRenderItemRow(t *testing.T) {
	item := nav.MenuItem{ID: nav.PageProducts, Label: "Products (BOM)", Icon: "▤"}

	got := RenderItemRow(item, false, false, 0, 40)
	if !strings.Contains(got, "Products (BOM)") {
		t.Errorf("row %q missing label", got)
	}

	selected := RenderItemRow(item, false, true, 0, 40)
	if !strings.Contains(selected, "❯") {
		t.Errorf("selected row %q missing cursor mark", selected)
	}
}

func TestRenderItemRowDisabled(t *testing.T) {
	item := nav.MenuItem{ID: nav.PageAnalytics, Label: "Analytics", Icon: "◎", Disabled: true}

	got := RenderItemRow(item, false, false, 2, 40)
	if !strings.Contains(got, "(soon)") {
		t.Errorf("disabled row %q missing the soon marker", got)
	}
}

func TestRenderItemRowTruncates(t *testing.T) {
	item := nav.MenuItem{ID: nav.PageProducts, Label: "An Extremely Long Product Section Label"}

	got := RenderItemRow(item, false, false, 0, 12)
	if !strings.Contains(got, "…") {
		t.Errorf("row %q not truncated at narrow width", got)
	}
}

func TestRenderGroupHeaderChevron(t *testing.T) {
	g := nav.MenuGroup{ID: "operations", Label: "Operations", Icon: "⚙"}

	closed := RenderGroupHeader(g, false, false, 40)
	if !strings.Contains(closed, "▸") {
		t.Errorf("closed header %q missing collapsed chevron", closed)
	}

	open := RenderGroupHeader(g, true, false, 40)
	if !strings.Contains(open, "▾") {
		t.Errorf("open header %q missing expanded chevron", open)
	}
}

func TestRenderThemeRow(t *testing.T) {
	active := RenderThemeRow("nord", true, false, 4, 40)
	if !strings.Contains(active, "●") {
		t.Errorf("active theme row %q missing filled marker", active)
	}

	inactive := RenderThemeRow("gruvbox", false, false, 4, 40)
	if !strings.Contains(inactive, "○") {
		t.Errorf("inactive theme row %q missing hollow marker", inactive)
	}
}

func TestRenderBreadcrumb(t *testing.T) {
	crumbs := []nav.Crumb{
		{Label: "Products (BOM)", Target: nav.PageProducts},
		{Label: "SKU-123 - Widget"},
	}

	got := RenderBreadcrumb(crumbs, 60)
	if !strings.Contains(got, "Products (BOM)") || !strings.Contains(got, "SKU-123 - Widget") {
		t.Errorf("breadcrumb %q missing segments", got)
	}
	if !strings.Contains(got, "›") {
		t.Errorf("breadcrumb %q missing separator", got)
	}
}

func TestRenderSidebarFramesBody(t *testing.T) {
	got := RenderSidebar("line one\nline two", 30, 20)
	if !strings.Contains(got, "Stockdeck") {
		t.Errorf("sidebar %q missing title", got)
	}
	if !strings.Contains(got, "line one") {
		t.Errorf("sidebar %q missing body", got)
	}
}

func TestRenderDrawerFillsBackdrop(t *testing.T) {
	got := RenderDrawer("menu body", 30, 80, 20)
	if !strings.Contains(got, "menu body") {
		t.Errorf("drawer %q missing body", got)
	}
	if !strings.Contains(got, "░") {
		t.Errorf("drawer %q missing backdrop shade", got)
	}
}
