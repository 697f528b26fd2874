// Package styles holds the color palettes and lipgloss styles for the
// stockdeck shell. The shell itself owns no theme state: it reads the
// active themed styles and calls SetActiveTheme when the user picks a
// theme from the sidebar's Themes panel.
package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName identifies a color theme.
type ThemeName string

// Built-in theme names.
const (
	ThemeDefault        ThemeName = "default"         // Indigo/teal dark theme
	ThemeDracula        ThemeName = "dracula"         // Dracula colors
	ThemeNord           ThemeName = "nord"            // Cool blue-gray
	ThemeGruvbox        ThemeName = "gruvbox"         // Retro groove
	ThemeCatppuccin     ThemeName = "catppuccin"      // Catppuccin Mocha pastels
	ThemeSolarizedLight ThemeName = "solarized-light" // Solarized Light variant
)

// BuiltinThemes returns all built-in theme names in menu order.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
		string(ThemeCatppuccin),
		string(ThemeSolarizedLight),
	}
}

// ValidThemes returns built-in plus registered custom theme names.
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme checks if a theme name is built-in or custom.
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent (active menu item, breadcrumb tail, group chevrons)
	Primary lipgloss.Color
	// Secondary accent (key hints, success states)
	Secondary lipgloss.Color
	// Warning color
	Warning lipgloss.Color
	// Error color
	Error lipgloss.Color
	// Muted de-emphasized text (disabled items, hints, backdrop)
	Muted lipgloss.Color
	// Surface panel background
	Surface lipgloss.Color
	// Text primary foreground
	Text lipgloss.Color
	// Border panel borders
	Border lipgloss.Color

	// Dark marks the palette as a dark theme. The shell reads this for
	// styling decisions such as the drawer backdrop shade.
	Dark bool
}

// DefaultPalette returns the indigo/teal dark theme.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#818CF8"), // Indigo-400
		Secondary: lipgloss.Color("#2DD4BF"), // Teal-400
		Warning:   lipgloss.Color("#FBBF24"), // Amber-400
		Error:     lipgloss.Color("#F87171"), // Red-400
		Muted:     lipgloss.Color("#9CA3AF"), // Gray-400
		Surface:   lipgloss.Color("#1F2937"), // Gray-800
		Text:      lipgloss.Color("#F9FAFB"), // Gray-50
		Border:    lipgloss.Color("#6B7280"), // Gray-500
		Dark:      true,
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#F1FA8C"), // Yellow
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#44475A"), // Selection
		Dark:      true,
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#4C566A"), // Polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Polar night 1
		Dark:      true,
	}
}

// GruvboxPalette returns the Gruvbox theme palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#83A598"), // Aqua
		Secondary: lipgloss.Color("#B8BB26"), // Green
		Warning:   lipgloss.Color("#FABD2F"), // Yellow
		Error:     lipgloss.Color("#FB4934"), // Red
		Muted:     lipgloss.Color("#928374"), // Gray
		Surface:   lipgloss.Color("#282828"), // bg0
		Text:      lipgloss.Color("#EBDBB2"), // fg
		Border:    lipgloss.Color("#3C3836"), // bg1
		Dark:      true,
	}
}

// CatppuccinPalette returns the Catppuccin Mocha theme palette.
func CatppuccinPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#89B4FA"), // Blue
		Secondary: lipgloss.Color("#A6E3A1"), // Green
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
		Muted:     lipgloss.Color("#6C7086"), // Overlay0
		Surface:   lipgloss.Color("#1E1E2E"), // Base
		Text:      lipgloss.Color("#CDD6F4"), // Text
		Border:    lipgloss.Color("#313244"), // Surface0
		Dark:      true,
	}
}

// SolarizedLightPalette returns the Solarized Light theme palette.
func SolarizedLightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#268BD2"), // Blue
		Secondary: lipgloss.Color("#859900"), // Green
		Warning:   lipgloss.Color("#B58900"), // Yellow
		Error:     lipgloss.Color("#DC322F"), // Red
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#FDF6E3"), // Base3
		Text:      lipgloss.Color("#657B83"), // Base00
		Border:    lipgloss.Color("#EEE8D5"), // Base2
		Dark:      false,
	}
}

// GetPalette returns the palette for a theme name. Custom themes win over
// built-in names; unknown names fall back to the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	case ThemeCatppuccin:
		return CatppuccinPalette()
	case ThemeSolarizedLight:
		return SolarizedLightPalette()
	default:
		return DefaultPalette()
	}
}
