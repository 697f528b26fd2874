package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

// Product is one row of the product list.
type Product struct {
	Code        string
	Description string
	OnHand      int
	OnOrder     int
}

// sampleProducts stands in for the product service until it is wired.
var sampleProducts = []Product{
	{Code: "SKU-101", Description: "Hex Bolt M8", OnHand: 4200, OnOrder: 0},
	{Code: "SKU-118", Description: "Washer 8mm", OnHand: 9650, OnOrder: 2000},
	{Code: "SKU-123", Description: "Widget", OnHand: 310, OnOrder: 500},
	{Code: "SKU-127", Description: "Widget Pro", OnHand: 44, OnOrder: 250},
	{Code: "SKU-204", Description: "Bearing 6204", OnHand: 780, OnOrder: 0},
	{Code: "SKU-219", Description: "Drive Belt A42", OnHand: 120, OnOrder: 60},
}

// ProductsModel is the product list page: a focusable table whose enter
// key requests a drill-down into the selected product.
type ProductsModel struct {
	table    table.Model
	products []Product
}

// NewProductsModel builds the product table with the sample catalog.
func NewProductsModel() *ProductsModel {
	columns := []table.Column{
		{Title: "Code", Width: 10},
		{Title: "Description", Width: 24},
		{Title: "On Hand", Width: 8},
		{Title: "On Order", Width: 8},
	}

	rows := make([]table.Row, len(sampleProducts))
	for i, p := range sampleProducts {
		rows[i] = table.Row{p.Code, p.Description, strconv.Itoa(p.OnHand), strconv.Itoa(p.OnOrder)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	m := &ProductsModel{table: t, products: sampleProducts}
	m.Restyle()
	return m
}

// Restyle rebuilds the table styles from the active theme. Called on
// theme changes.
func (m *ProductsModel) Restyle() {
	th := styles.GetActiveTheme()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.BorderColor).
		BorderBottom(true).
		Bold(true).
		Foreground(th.PrimaryColor)
	s.Selected = s.Selected.
		Foreground(th.TextColor).
		Background(th.PrimaryColor).
		Bold(true)
	m.table.SetStyles(s)
}

// Focus gives the table keyboard focus.
func (m *ProductsModel) Focus() { m.table.Focus() }

// Blur removes keyboard focus from the table.
func (m *ProductsModel) Blur() { m.table.Blur() }

// Focused reports whether the table has keyboard focus.
func (m *ProductsModel) Focused() bool { return m.table.Focused() }

// Selected returns the product under the cursor.
func (m *ProductsModel) Selected() Product {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.products) {
		return Product{}
	}
	return m.products[i]
}

// Update handles table navigation; enter requests the detail page for
// the selected product.
func (m *ProductsModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && m.table.Focused() {
		p := m.Selected()
		if p.Code == "" {
			return nil
		}
		return func() tea.Msg {
			return ViewProductMsg{Code: p.Code, Description: p.Description}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// View renders the table inside the themed content box.
func (m *ProductsModel) View(width int) string {
	th := styles.GetActiveTheme()
	hint := th.Subtitle.Render("enter drills into the selected product")
	return th.ContentBox.Width(width).Render(m.table.View() + "\n" + hint)
}
