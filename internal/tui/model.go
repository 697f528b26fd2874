package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stockdeck/stockdeck/internal/config"
	"github.com/stockdeck/stockdeck/internal/logging"
	"github.com/stockdeck/stockdeck/internal/nav"
	"github.com/stockdeck/stockdeck/internal/tui/disclosure"
	"github.com/stockdeck/stockdeck/internal/tui/pages"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
	"github.com/stockdeck/stockdeck/internal/tui/view"
)

// Focus identifies which panel receives keyboard input.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
)

// themesPanelID is the accordion id of the nested Themes panel, which
// lives at the bottom of the System Data group.
const (
	themesPanelID = "themes"
	themesGroupID = "system-data"
)

// rowKind classifies one selectable sidebar row.
type rowKind int

const (
	rowItem rowKind = iota
	rowGroup
	rowThemesHeader
	rowTheme
)

// row is one selectable line of the sidebar in display order. Rows
// inside collapsed sections are not listed; mid-animation clipping only
// affects rendering, never selection.
type row struct {
	kind     rowKind
	id       string
	disabled bool
}

// Model is the bubbletea model for the whole shell. It owns navigation
// state, the accordion, the drawer, and one disclosure panel per
// collapsible region.
type Model struct {
	cfg    *config.Config
	logger *logging.Logger
	keys   KeyMap

	menu      *nav.Menu
	nav       *nav.Controller
	accordion *nav.AccordionModel
	drawer    *nav.Drawer

	groupPanels map[string]*disclosure.Panel
	themesPanel *disclosure.Panel

	products *pages.ProductsModel

	cursor int
	focus  Focus
	width  int
	height int
}

// NewModel builds the shell in its initial state: dashboard active, all
// sections collapsed, drawer closed.
func NewModel(cfg *config.Config, logger *logging.Logger) *Model {
	menu := nav.DefaultMenu()
	interval := cfg.TUI.AnimationInterval()

	panels := make(map[string]*disclosure.Panel, len(menu.Groups))
	for _, g := range menu.Groups {
		panels[g.ID] = disclosure.New("group:"+g.ID, disclosure.WithInterval(interval))
	}

	return &Model{
		cfg:         cfg,
		logger:      logger.WithComponent("shell"),
		keys:        DefaultKeyMap(),
		menu:        menu,
		nav:         nav.NewController(menu),
		accordion:   nav.NewAccordionModel(),
		drawer:      nav.NewDrawer(),
		groupPanels: panels,
		themesPanel: disclosure.New("nested:"+themesPanelID, disclosure.WithInterval(interval)),
		products:    pages.NewProductsModel(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.narrow() {
			// Leaving the narrow layout dismisses the overlay.
			m.drawer.Close()
		}
		return m, nil

	case disclosure.TickMsg:
		var cmds []tea.Cmd
		for _, p := range m.groupPanels {
			if cmd := p.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if cmd := m.themesPanel.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case pages.ViewProductMsg:
		if m.nav.NavigateToDetail(nav.PageProductDetail, msg.Code, msg.Description) {
			m.logger.Info("navigated to detail", "page", string(nav.PageProductDetail), "code", msg.Code)
			m.drawer.Close()
			m.setFocus(FocusSidebar)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Esc):
		if m.drawer.IsOpen() {
			m.drawer.Close()
			return m, nil
		}
		if m.focus == FocusContent {
			m.setFocus(FocusSidebar)
		}
		return m, nil

	case key.Matches(msg, m.keys.Drawer):
		if m.narrow() {
			m.drawer.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.contentFocusable() {
			if m.focus == FocusSidebar {
				m.setFocus(FocusContent)
			} else {
				m.setFocus(FocusSidebar)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Themes):
		return m, m.openThemes()

	case key.Matches(msg, m.keys.Back):
		if d, ok := m.menu.Detail(m.nav.ActivePage()); ok {
			if m.nav.NavigateBack(d.Parent) {
				m.logger.Info("navigated back", "page", string(d.Parent))
			}
		}
		return m, nil
	}

	if m.focus == FocusContent && m.nav.ActivePage() == nav.PageProducts {
		return m, m.products.Update(msg)
	}

	rs := m.rows()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(rs) {
			return m, m.activate(rs[m.cursor])
		}
	case key.Matches(msg, m.keys.Space):
		if m.cursor < len(rs) {
			r := rs[m.cursor]
			if r.kind == rowGroup || r.kind == rowThemesHeader {
				return m, m.activate(r)
			}
		}
	}
	return m, nil
}

// openThemes jumps straight to the theme picker: it expands the hosting
// group if needed and toggles the nested Themes panel, so the panel may
// grow while its parent is still opening.
func (m *Model) openThemes() tea.Cmd {
	var cmds []tea.Cmd
	if !m.accordion.IsGroupOpen(themesGroupID) {
		expanded := m.accordion.ToggleGroup(themesGroupID)
		for id, p := range m.groupPanels {
			if cmd := p.SetOpen(id == expanded); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	open := m.accordion.ToggleNested(themesPanelID)
	if cmd := m.themesPanel.SetOpen(open); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.logger.Debug("themes hotkey", "open", open)
	m.clampCursor()
	return tea.Batch(cmds...)
}

// activate performs the action behind a sidebar row.
func (m *Model) activate(r row) tea.Cmd {
	switch r.kind {
	case rowItem:
		page := nav.Page(r.id)
		if m.nav.NavigateTo(page) {
			m.logger.Info("navigated", "page", r.id)
			m.drawer.Close()
			m.setFocus(FocusSidebar)
		}
		return nil

	case rowGroup:
		expanded := m.accordion.ToggleGroup(r.id)
		m.logger.Debug("toggled group", "group", r.id, "expanded", expanded)
		cmds := make([]tea.Cmd, 0, len(m.groupPanels))
		for id, p := range m.groupPanels {
			if cmd := p.SetOpen(id == expanded); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.clampCursor()
		return tea.Batch(cmds...)

	case rowThemesHeader:
		open := m.accordion.ToggleNested(themesPanelID)
		m.logger.Debug("toggled themes panel", "open", open)
		cmd := m.themesPanel.SetOpen(open)
		m.clampCursor()
		return cmd

	case rowTheme:
		styles.SetActiveTheme(styles.ThemeName(r.id))
		m.products.Restyle()
		m.logger.Info("theme changed", "theme", r.id)
		return nil
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.cfg.TUI.MouseEnabled {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if m.drawer.IsOpen() {
		if z := zone.Get(view.ZoneDrawer); z != nil && !z.InBounds(msg) {
			// Backdrop tap.
			m.drawer.Close()
			return nil
		}
	}

	for _, c := range m.nav.Breadcrumb() {
		if !c.Interactive() {
			continue
		}
		if z := zone.Get(view.ZoneCrumbPrefix + string(c.Target)); z != nil && z.InBounds(msg) {
			if m.nav.NavigateBack(c.Target) {
				m.logger.Info("navigated back", "page", string(c.Target))
			}
			return nil
		}
	}

	for i, r := range m.rows() {
		if z := zone.Get(m.rowZoneID(r)); z != nil && z.InBounds(msg) {
			m.cursor = i
			return m.activate(r)
		}
	}
	return nil
}

func (m *Model) rowZoneID(r row) string {
	switch r.kind {
	case rowGroup:
		return view.ZoneGroupPrefix + r.id
	case rowThemesHeader:
		return view.ZoneThemesHeader
	case rowTheme:
		return view.ZoneThemePrefix + r.id
	default:
		return view.ZoneItemPrefix + r.id
	}
}

// rows returns the selectable sidebar rows in display order, honoring
// the accordion's logical state.
func (m *Model) rows() []row {
	var rs []row
	for _, it := range m.menu.Items {
		rs = append(rs, row{rowItem, string(it.ID), it.Disabled})
	}
	for _, g := range m.menu.Groups {
		rs = append(rs, row{rowGroup, g.ID, false})
		if !m.accordion.IsGroupOpen(g.ID) {
			continue
		}
		for _, it := range g.Items {
			rs = append(rs, row{rowItem, string(it.ID), it.Disabled})
		}
		if g.ID == themesGroupID {
			rs = append(rs, row{rowThemesHeader, themesPanelID, false})
			if m.accordion.IsNestedOpen(themesPanelID) {
				for _, name := range styles.ValidThemes() {
					rs = append(rs, row{rowTheme, name, false})
				}
			}
		}
	}
	return rs
}

func (m *Model) clampCursor() {
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusContent && m.nav.ActivePage() == nav.PageProducts {
		m.products.Focus()
	} else {
		m.products.Blur()
	}
}

// contentFocusable reports whether the active page has a widget that can
// take keyboard focus.
func (m *Model) contentFocusable() bool {
	return m.nav.ActivePage() == nav.PageProducts
}

func (m *Model) narrow() bool {
	return m.width > 0 && m.width < m.narrowThreshold()
}

func (m *Model) narrowThreshold() int {
	if m.cfg.TUI.NarrowThreshold > 0 {
		return m.cfg.TUI.NarrowThreshold
	}
	return NarrowTerminalThreshold
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := view.RenderBreadcrumb(m.nav.Breadcrumb(), m.width)
	sidebarW, contentW, mainH := CalculateMainAreaDimensions(m.width, m.height, m.cfg.TUI.SidebarWidth, m.narrowThreshold())
	content := m.renderContent(contentW)

	var mainArea string
	switch {
	case m.drawer.IsOpen():
		drawerW := min(m.cfg.TUI.SidebarWidth, m.width-6)
		if drawerW <= 0 {
			drawerW = min(SidebarWidth, m.width-6)
		}
		body := m.sidebarBody(CalculateSidebarContentWidth(drawerW))
		mainArea = view.RenderDrawer(body, drawerW, m.width, mainH)
	case sidebarW > 0:
		body := m.sidebarBody(CalculateSidebarContentWidth(sidebarW))
		sidebar := view.RenderSidebar(body, sidebarW, mainH)
		gap := strings.Repeat(" ", PanelGap)
		mainArea = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, gap, content)
	default:
		mainArea = content
	}

	help := view.RenderHelpBar(m.helpBindings(), m.width)

	return zone.Scan(header + "\n" + mainArea + "\n" + help)
}

// sidebarBody assembles the menu rows, routing each group's rows through
// its disclosure panel so collapsed sections animate open and closed.
func (m *Model) sidebarBody(width int) string {
	focused := m.focus == FocusSidebar || m.drawer.IsOpen()
	idx := 0
	selected := func() bool {
		s := focused && idx == m.cursor
		idx++
		return s
	}
	noSelect := func() bool { return false }

	var b strings.Builder
	for _, it := range m.menu.Items {
		b.WriteString(view.RenderItemRow(it, m.nav.ActivePage() == it.ID, selected(), 0, width))
		b.WriteString("\n")
	}

	for _, g := range m.menu.Groups {
		open := m.accordion.IsGroupOpen(g.ID)
		b.WriteString(view.RenderGroupHeader(g, open, selected(), width))
		b.WriteString("\n")

		// Closed-but-animating groups still render their content, clipped
		// by the panel; those rows are not selectable.
		sel := noSelect
		if open {
			sel = selected
		}
		panel := m.groupPanels[g.ID]
		panel.SetContent(m.groupContent(g, width, sel))
		if body := panel.View(); body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// groupContent renders the rows inside one group, including the nested
// Themes panel for the group that hosts it.
func (m *Model) groupContent(g nav.MenuGroup, width int, selected func() bool) string {
	var b strings.Builder
	for _, it := range g.Items {
		b.WriteString(view.RenderItemRow(it, m.nav.ActivePage() == it.ID, selected(), 2, width))
		b.WriteString("\n")
	}

	if g.ID == themesGroupID {
		open := m.accordion.IsNestedOpen(themesPanelID)
		b.WriteString(view.RenderThemesHeader(open, selected(), 2, width))
		b.WriteString("\n")

		sel := selected
		if !open {
			sel = func() bool { return false }
		}
		active := string(styles.ActiveThemeName())
		var themes strings.Builder
		for _, name := range styles.ValidThemes() {
			themes.WriteString(view.RenderThemeRow(name, name == active, sel(), 4, width))
			themes.WriteString("\n")
		}
		m.themesPanel.SetContent(strings.TrimSuffix(themes.String(), "\n"))
		if body := m.themesPanel.View(); body != "" {
			b.WriteString(body)
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderContent(width int) string {
	boxW := CalculateContentBoxWidth(width)
	switch page := m.nav.ActivePage(); page {
	case nav.PageProducts:
		return m.products.View(boxW)
	case nav.PageProductDetail:
		return pages.RenderDetail(m.nav.Selection(), boxW)
	default:
		return pages.RenderStatic(page, boxW)
	}
}

// helpBindings returns the contextual key hints for the help bar.
func (m *Model) helpBindings() []key.Binding {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Space, m.keys.Themes}
	if m.contentFocusable() {
		bindings = append(bindings, m.keys.Tab)
	}
	if _, ok := m.menu.Detail(m.nav.ActivePage()); ok {
		bindings = append(bindings, m.keys.Back)
	}
	if m.narrow() {
		bindings = append(bindings, m.keys.Drawer)
	}
	return append(bindings, m.keys.Quit)
}
