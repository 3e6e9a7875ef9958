package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultMaxCellWidth bounds free-text columns such as registry descriptions
const DefaultMaxCellWidth = 60

// Table renders rows of mise records inside a rounded border
type Table struct {
	title        string
	headers      []string
	rows         []tableRow
	widths       []int
	hideHeader   bool
	maxCellWidth int
	minWidth     int
}

type tableRow struct {
	cells  []string
	active bool
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers:      headers,
		widths:       widths,
		maxCellWidth: DefaultMaxCellWidth,
	}
}

// SetTitle sets a title that spans all columns at the top of the table
func (t *Table) SetTitle(title string) {
	t.title = title
}

// HideHeader hides the column header row
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth sets a minimum width for the table content
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// SetMaxCellWidth changes the truncation width; zero disables truncation
func (t *Table) SetMaxCellWidth(width int) {
	t.maxCellWidth = width
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.addRow(cells, false)
}

// AddActiveRow adds a highlighted row, used for the active tool version
func (t *Table) AddActiveRow(cells ...string) {
	t.addRow(cells, true)
}

func (t *Table) addRow(cells []string, active bool) {
	// Pad or drop cells to match the header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i >= len(cells) {
			continue
		}
		row[i] = truncate(cells[i], t.maxCellWidth)
		// lipgloss.Width ignores ANSI codes
		if w := lipgloss.Width(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, tableRow{cells: row, active: active})
}

// truncate shortens plain text cells; styled cells are left alone
func truncate(cell string, max int) string {
	if max <= 0 || strings.Contains(cell, "\x1b[") {
		return cell
	}
	runes := []rune(cell)
	if len(runes) <= max {
		return cell
	}
	return string(runes[:max-1]) + "…"
}

// Render returns the rendered table as a string
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	initStyles()

	totalWidth := 0
	for _, w := range t.widths {
		totalWidth += w + 2
	}

	// Widen the last column to fill the minimum
	if t.minWidth > 0 && totalWidth < t.minWidth {
		t.widths[len(t.widths)-1] += t.minWidth - totalWidth
		totalWidth = t.minWidth
	}

	var lines []string

	if t.title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Width(totalWidth).
			Align(lipgloss.Center)
		lines = append(lines, titleStyle.Render(t.title))
		lines = append(lines, StyleMuted.Render(strings.Repeat("─", totalWidth)))
	}

	if !t.hideHeader {
		var headerLine strings.Builder
		for i, h := range t.headers {
			headerLine.WriteString(StyleTableHeader.Width(t.widths[i] + 2).Render(h))
		}
		lines = append(lines, headerLine.String())
		lines = append(lines, StyleMuted.Render(strings.Repeat("─", totalWidth)))
	}

	for _, row := range t.rows {
		var rowLine strings.Builder
		for i, cell := range row.cells {
			style := StyleTableCell.Width(t.widths[i] + 2)
			if row.active {
				style = style.Foreground(colorSuccess)
			}
			rowLine.WriteString(style.Render(cell))
		}
		lines = append(lines, rowLine.String())
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}

// RowCount returns the number of data rows (excluding header)
func (t *Table) RowCount() int {
	return len(t.rows)
}
