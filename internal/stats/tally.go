package stats

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"ratgen/internal/genetics"
)

// TallyEntry compares how often a phenotype appeared in a simulated litter
// with the count the cross predicts.
type TallyEntry struct {
	Phenotype genetics.Phenotype `json:"phenotype"`
	Count     int                `json:"count"`
	Expected  float64            `json:"expected"`
}

// TallyLitter counts pups per phenotype in table order. Phenotypes outside
// the table are ignored.
func TallyLitter(table []genetics.PhenotypeProbability, litter []genetics.Phenotype) []TallyEntry {
	counts := make(map[genetics.Phenotype]int, len(table))
	for _, pup := range litter {
		counts[pup]++
	}
	entries := make([]TallyEntry, 0, len(table))
	for _, row := range table {
		entries = append(entries, TallyEntry{
			Phenotype: row.Phenotype,
			Count:     counts[row.Phenotype],
			Expected:  row.Probability * float64(len(litter)),
		})
	}
	return entries
}

// WriteLitter prints the litter on one line followed by its tally.
func WriteLitter(w io.Writer, p *message.Printer, table []genetics.PhenotypeProbability, litter []genetics.Phenotype) error {
	names := make([]string, len(litter))
	for i, pup := range litter {
		names[i] = string(pup)
	}
	if _, err := p.Fprintf(w, "\nSimulated litter (%d): %s\n", len(litter), strings.Join(names, ", ")); err != nil {
		return err
	}
	for _, entry := range TallyLitter(table, litter) {
		label := runewidth.FillRight(string(entry.Phenotype), phenotypeLabelWidth)
		if _, err := p.Fprintf(w, "  %s  %3d  (expected %.1f)\n", label, entry.Count, entry.Expected); err != nil {
			return err
		}
	}
	return nil
}
