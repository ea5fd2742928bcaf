package stats

import (
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"ratgen/internal/genetics"
)

const (
	phenotypeLabelWidth = 12
	genotypeLabelWidth  = 16
)

// Row is one labeled probability in a printed report.
type Row struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

func PhenotypeRows(t genetics.Tables) []Row {
	rows := make([]Row, 0, len(t.Phenotypes))
	for _, p := range t.Phenotypes {
		rows = append(rows, Row{Label: string(p.Phenotype), Probability: p.Probability})
	}
	return rows
}

func GenotypeRows(t genetics.Tables) []Row {
	rows := make([]Row, 0, len(t.Table))
	for _, g := range t.Table {
		rows = append(rows, Row{Label: g.Key, Probability: g.Probability})
	}
	return rows
}

// WriteCrossReport prints the phenotype and genotype sections as
// percentages with one decimal, formatted for the printer's locale.
func WriteCrossReport(w io.Writer, p *message.Printer, t genetics.Tables) error {
	if _, err := p.Fprintf(w, "\nPhenotype probabilities:\n"); err != nil {
		return err
	}
	if err := writeRows(w, p, PhenotypeRows(t), phenotypeLabelWidth); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "\nGenotypes:\n"); err != nil {
		return err
	}
	return writeRows(w, p, GenotypeRows(t), genotypeLabelWidth)
}

func writeRows(w io.Writer, p *message.Printer, rows []Row, minWidth int) error {
	width := labelWidth(rows, minWidth)
	for _, row := range rows {
		if _, err := p.Fprintf(w, "  %s  %5.1f%%\n", runewidth.FillRight(row.Label, width), row.Probability*100); err != nil {
			return err
		}
	}
	return nil
}

func labelWidth(rows []Row, minWidth int) int {
	width := minWidth
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Label); w > width {
			width = w
		}
	}
	return width
}
