package genetics

import "math/rand"

// Source yields uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// SampleLitter draws n phenotypes with replacement from table. Each draw
// picks the first row whose cumulative probability meets or exceeds it, in
// table order. Rounding that leaves the cumulative total short of a draw
// falls back to the last row.
func SampleLitter(table []PhenotypeProbability, n int, src Source) []Phenotype {
	if n <= 0 || len(table) == 0 {
		return nil
	}
	cumulative := make([]float64, len(table))
	total := 0.0
	for i, row := range table {
		total += row.Probability
		cumulative[i] = total
	}

	litter := make([]Phenotype, 0, n)
	for len(litter) < n {
		r := src.Float64()
		pick := table[len(table)-1].Phenotype
		for i, c := range cumulative {
			if r <= c {
				pick = table[i].Phenotype
				break
			}
		}
		litter = append(litter, pick)
	}
	return litter
}
