package tui

import "testing"

func TestCalculateMainAreaDimensions(t *testing.T) {
	tests := []struct {
		name        string
		termWidth   int
		termHeight  int
		sidebar     int
		threshold   int
		wantSidebar int
		wantContent int
		wantHeight  int
	}{
		{"wide default sidebar", 120, 40, 0, 0, SidebarWidth, 120 - SidebarWidth - PanelGap, 36},
		{"wide configured sidebar", 120, 40, 40, 0, 40, 79, 36},
		{"narrow hides sidebar", 60, 40, 32, 0, 0, 60, 36},
		{"configured threshold", 90, 40, 32, 100, 0, 90, 36},
		{"tiny terminal clamps", 30, 3, 32, 0, 0, 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sidebar, content, height := CalculateMainAreaDimensions(tt.termWidth, tt.termHeight, tt.sidebar, tt.threshold)
			if sidebar != tt.wantSidebar || content != tt.wantContent || height != tt.wantHeight {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)",
					sidebar, content, height, tt.wantSidebar, tt.wantContent, tt.wantHeight)
			}
		})
	}
}

func TestCalculateSidebarContentWidth(t *testing.T) {
	if got := CalculateSidebarContentWidth(32); got != 32-SidebarPadding {
		t.Errorf("CalculateSidebarContentWidth(32) = %d, want %d", got, 32-SidebarPadding)
	}
	if got := CalculateSidebarContentWidth(2); got != 1 {
		t.Errorf("CalculateSidebarContentWidth(2) = %d, want 1", got)
	}
}

func TestCalculateContentBoxWidth(t *testing.T) {
	if got := CalculateContentBoxWidth(80); got != 80-ContentBoxPadding {
		t.Errorf("CalculateContentBoxWidth(80) = %d, want %d", got, 80-ContentBoxPadding)
	}
	if got := CalculateContentBoxWidth(3); got != 1 {
		t.Errorf("CalculateContentBoxWidth(3) = %d, want 1", got)
	}
}
