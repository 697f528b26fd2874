package styles

import "testing"

func TestNewThemedStyles(t *testing.T) {
	p := DefaultPalette()
	s := NewThemedStyles(p)

	if s == nil {
		t.Fatal("NewThemedStyles() returned nil")
	}

	if s.PrimaryColor != p.Primary {
		t.Errorf("PrimaryColor = %q, want %q", s.PrimaryColor, p.Primary)
	}
	if s.MutedColor != p.Muted {
		t.Errorf("MutedColor = %q, want %q", s.MutedColor, p.Muted)
	}
	if !s.Dark {
		t.Error("Dark = false for the default palette")
	}
}

func TestGetPaletteFallback(t *testing.T) {
	ClearCustomThemes()

	tests := []struct {
		name    ThemeName
		primary string
		dark    bool
	}{
		{ThemeDefault, "#818CF8", true},
		{ThemeDracula, "#BD93F9", true},
		{ThemeNord, "#88C0D0", true},
		{ThemeGruvbox, "#83A598", true},
		{ThemeCatppuccin, "#89B4FA", true},
		{ThemeSolarizedLight, "#268BD2", false},
		{"no-such-theme", "#818CF8", true}, // falls back to default
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			p := GetPalette(tt.name)
			if string(p.Primary) != tt.primary {
				t.Errorf("Primary = %q, want %q", p.Primary, tt.primary)
			}
			if p.Dark != tt.dark {
				t.Errorf("Dark = %v, want %v", p.Dark, tt.dark)
			}
		})
	}
}

func TestSetActiveTheme(t *testing.T) {
	defer SetActiveTheme(ThemeDefault)

	SetActiveTheme(ThemeDracula)
	if ActiveThemeName() != ThemeDracula {
		t.Errorf("ActiveThemeName() = %q, want %q", ActiveThemeName(), ThemeDracula)
	}
	if GetActiveTheme().PrimaryColor != DraculaPalette().Primary {
		t.Error("active styles were not rebuilt from the dracula palette")
	}

	SetActiveTheme(ThemeSolarizedLight)
	if GetActiveTheme().Dark {
		t.Error("Dark = true after switching to solarized-light")
	}
}

func TestThemedStylesCanRender(t *testing.T) {
	s := NewThemedStyles(DefaultPalette())

	// Rendering should not panic and should return the input text.
	for name, style := range map[string]func(...string) string{
		"MenuItem":       s.MenuItem.Render,
		"MenuItemActive": s.MenuItemActive.Render,
		"GroupHeader":    s.GroupHeader.Render,
		"BreadcrumbLink": s.BreadcrumbLink.Render,
		"HelpKey":        s.HelpKey.Render,
	} {
		if out := style("x"); out == "" {
			t.Errorf("%s rendered empty output", name)
		}
	}
}
