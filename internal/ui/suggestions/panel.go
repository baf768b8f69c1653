package suggestions

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/hrutik5321/rollpair/internal/rolls"
	"github.com/hrutik5321/rollpair/internal/ui/table"
)

const Heading = "Suggested Pairs for Remaining Rolls"

var Columns = []string{
	"Current Width",
	"Suggested Pair Width",
	"Quantity Needed",
	"Total Width",
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	pairStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb"))
)

// Cell is one table cell. Emphasis marks the suggested pair width.
type Cell struct {
	Text     string
	Emphasis bool
}

// Row is keyed by its position in the rendered list.
type Row struct {
	Key   int
	Cells []Cell
}

// Panel is the rendered suggestion table.
type Panel struct {
	Heading string
	Columns []string
	Rows    []Row
}

// Build lays out one row per suggestion. It returns nil when there is
// nothing to suggest; a nil Panel renders as an empty string.
func Build(s []rolls.Suggestion, maxWidth float64) *Panel {
	if len(s) == 0 {
		return nil
	}
	total := mm(rolls.EffectiveMaxWidth(maxWidth))

	p := &Panel{
		Heading: Heading,
		Columns: append([]string(nil), Columns...),
		Rows:    make([]Row, 0, len(s)),
	}
	for i, sg := range s {
		p.Rows = append(p.Rows, Row{
			Key: i,
			Cells: []Cell{
				{Text: mm(sg.OriginalWidth)},
				{Text: mm(sg.SuggestedWidth), Emphasis: true},
				{Text: num(sg.Quantity)},
				{Text: total},
			},
		})
	}
	return p
}

// Render draws the heading and table with emphasised cells styled.
func (p *Panel) Render() string {
	return p.render(true)
}

// Plain is Render without any terminal styling.
func (p *Panel) Plain() string {
	return p.render(false)
}

func (p *Panel) render(styled bool) string {
	if p == nil {
		return ""
	}

	rows := make([][]string, len(p.Rows))
	for i, r := range p.Rows {
		cells := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = c.Text
			if styled && c.Emphasis {
				cells[j] = pairStyle.Render(c.Text)
			}
		}
		rows[i] = cells
	}

	heading := p.Heading
	if styled {
		heading = headingStyle.Render(heading)
	}
	return heading + "\n\n" + table.Render(p.Columns, rows)
}

// View computes, builds and renders in one call.
func View(rs []rolls.Roll, maxWidth float64) string {
	return Build(rolls.Compute(rs, maxWidth), maxWidth).Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mm(v float64) string {
	return num(v) + "mm"
}
