package stats

import (
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"ratgen/internal/genetics"
)

const defaultBarWidth = 40

// BarPoint is one bar of a phenotype chart, Value in percent.
type BarPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BuildPhenotypeBars keeps table order and converts probabilities to percent.
func BuildPhenotypeBars(rows []genetics.PhenotypeProbability) []BarPoint {
	points := make([]BarPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, BarPoint{Label: string(row.Phenotype), Value: row.Probability * 100})
	}
	return points
}

// ChartTitle names a cross the way it is written on a breeding card.
func ChartTitle(sire, dam string) string {
	return sire + " × " + dam
}

// RenderBarChart draws a horizontal bar chart on a 0-100% scale. A
// non-positive width falls back to 40 cells.
func RenderBarChart(w io.Writer, p *message.Printer, title string, points []BarPoint, width int) error {
	if width <= 0 {
		width = defaultBarWidth
	}
	if _, err := p.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", runewidth.StringWidth(title))); err != nil {
		return err
	}

	labels := 0
	for _, point := range points {
		if lw := runewidth.StringWidth(point.Label); lw > labels {
			labels = lw
		}
	}
	for _, point := range points {
		cells := barCells(point.Value, width)
		bar := strings.Repeat("█", cells) + strings.Repeat(" ", width-cells)
		if _, err := p.Fprintf(w, "%s │%s│ %5.1f%%\n", runewidth.FillLeft(point.Label, labels), bar, point.Value); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "%s  Probability (%%)\n", strings.Repeat(" ", labels))
	return err
}

func barCells(percent float64, width int) int {
	cells := int(math.Round(percent / 100 * float64(width)))
	if cells < 0 {
		return 0
	}
	if cells > width {
		return width
	}
	return cells
}
