package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Render draws an ASCII table from columns + rows. Cells may carry ANSI
// styling; widths are measured on what is visible.
func Render(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return "(No columns)\n"
	}

	// Calculate width of each column
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if l := lipgloss.Width(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	border := makeBorder(widths)

	var sb strings.Builder

	sb.WriteString(border)
	writeRow(&sb, widths, columns)
	sb.WriteString(border)

	for _, row := range rows {
		writeRow(&sb, widths, row)
	}

	sb.WriteString(border)

	return sb.String()
}

func makeBorder(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
	return b.String()
}

func writeRow(sb *strings.Builder, widths []int, cells []string) {
	sb.WriteString("|")
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// ApplyHorizontalScroll clips every line to [offset, offset+width) visible
// cells, keeping ANSI styling intact.
func ApplyHorizontalScroll(s string, offset, width int) string {
	if width <= 0 {
		return s
	}
	if offset < 0 {
		offset = 0
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if offset >= ansi.StringWidth(line) {
			out = append(out, "")
			continue
		}
		out = append(out, ansi.Cut(line, offset, offset+width))
	}

	return strings.Join(out, "\n")
}
