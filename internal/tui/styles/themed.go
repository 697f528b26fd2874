package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color
// palette, regenerated whenever the theme changes.
type ThemedStyles struct {
	// Colors from the palette, for callers that style inline.
	PrimaryColor lipgloss.Color
	MutedColor   lipgloss.Color
	SurfaceColor lipgloss.Color
	TextColor    lipgloss.Color
	BorderColor  lipgloss.Color

	// Dark is true for dark palettes.
	Dark bool

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Sidebar panel
	Sidebar      lipgloss.Style
	SidebarTitle lipgloss.Style

	// Menu rows
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	GroupHeader      lipgloss.Style
	GroupHeaderOpen  lipgloss.Style

	// Nested panels (Themes)
	NestedHeader   lipgloss.Style
	ThemeRow       lipgloss.Style
	ThemeRowActive lipgloss.Style

	// Breadcrumb header
	BreadcrumbLink      lipgloss.Style
	BreadcrumbCurrent   lipgloss.Style
	BreadcrumbSeparator lipgloss.Style

	// Content area
	ContentBox lipgloss.Style

	// Drawer overlay
	Drawer   lipgloss.Style
	Backdrop lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Messages
	ErrorMsg lipgloss.Style
}

// NewThemedStyles builds the style set for a palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor: p.Primary,
		MutedColor:   p.Muted,
		SurfaceColor: p.Surface,
		TextColor:    p.Text,
		BorderColor:  p.Border,
		Dark:         p.Dark,
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 1)

	s.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.MenuItem = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	s.MenuItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	s.MenuItemDisabled = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true).
		Padding(0, 1)

	s.GroupHeader = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	s.GroupHeaderOpen = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Padding(0, 1)

	s.NestedHeader = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Padding(0, 1)

	s.ThemeRow = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	s.ThemeRowActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Secondary).
		Padding(0, 1)

	s.BreadcrumbLink = lipgloss.NewStyle().
		Foreground(p.Primary).
		Underline(true)

	s.BreadcrumbCurrent = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.BreadcrumbSeparator = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.Drawer = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.Primary).
		Padding(1, 1)

	s.Backdrop = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	return s
}

// activeTheme holds the currently active themed styles.
var (
	activeTheme     *ThemedStyles
	activeThemeName ThemeName
)

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
	activeThemeName = ThemeDefault
}

// SetActiveTheme rebuilds the active styles from the named theme.
//
// Not thread-safe: call only from the bubbletea event loop.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	activeThemeName = name
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// ActiveThemeName returns the name of the currently active theme.
func ActiveThemeName() ThemeName {
	return activeThemeName
}
