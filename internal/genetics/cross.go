package genetics

import (
	"math/rand"
	"sort"
)

// GenotypeProbability is one row of the offspring genotype table.
type GenotypeProbability struct {
	Key         string    `json:"key"`
	Genotype    Genotype  `json:"-"`
	Phenotype   Phenotype `json:"phenotype"`
	Probability float64   `json:"probability"`
}

// PhenotypeProbability is one row of the offspring phenotype table.
type PhenotypeProbability struct {
	Phenotype   Phenotype `json:"phenotype"`
	Probability float64   `json:"probability"`
}

// Tables holds both offspring distributions, each in descending probability
// order with ties kept in Punnett enumeration order.
type Tables struct {
	Table      []GenotypeProbability  `json:"table"`
	Phenotypes []PhenotypeProbability `json:"phenotypes"`
}

// CrossOptions controls the optional litter simulation. Rand takes precedence
// over Seed; with neither the process-global generator is used.
type CrossOptions struct {
	LitterSize int
	Seed       *int64
	Rand       Source
}

// CrossResult is the full outcome of one cross. Litter is nil unless a
// positive litter size was requested.
type CrossResult struct {
	Tables
	Litter []Phenotype `json:"litter,omitempty"`
}

// Cross parses both parents, builds the Punnett square and optionally
// samples a litter. Only FormatError can be returned.
func Cross(parent1, parent2 string, opts CrossOptions) (CrossResult, error) {
	g1, err := ParseGenotype(parent1)
	if err != nil {
		return CrossResult{}, err
	}
	g2, err := ParseGenotype(parent2)
	if err != nil {
		return CrossResult{}, err
	}

	result := CrossResult{Tables: CrossGenotypes(g1, g2)}
	if opts.LitterSize > 0 {
		src := opts.Rand
		if src == nil && opts.Seed != nil {
			src = rand.New(rand.NewSource(*opts.Seed))
		}
		if src == nil {
			src = globalSource{}
		}
		result.Litter = SampleLitter(result.Phenotypes, opts.LitterSize, src)
	}
	return result, nil
}

// CrossGenotypes combines every gamete of g1 with every gamete of g2.
func CrossGenotypes(g1, g2 Genotype) Tables {
	gametes1 := Gametes(g1)
	gametes2 := Gametes(g2)
	short := g1.singleCharacter() && g2.singleCharacter()

	index := make(map[string]int)
	genotypes := make([]GenotypeProbability, 0, len(gametes1)*len(gametes2))
	for _, x := range gametes1 {
		for _, y := range gametes2 {
			offspring := Fertilize(x, y)
			key := offspring.key(short)
			i, ok := index[key]
			if !ok {
				i = len(genotypes)
				index[key] = i
				genotypes = append(genotypes, GenotypeProbability{
					Key:       key,
					Genotype:  offspring,
					Phenotype: PhenotypeOf(offspring),
				})
			}
			genotypes[i].Probability += x.Probability * y.Probability
		}
	}
	sortGenotypes(genotypes)

	phenoIndex := make(map[Phenotype]int)
	phenotypes := make([]PhenotypeProbability, 0, len(phenotypeTable))
	for _, row := range genotypes {
		i, ok := phenoIndex[row.Phenotype]
		if !ok {
			i = len(phenotypes)
			phenoIndex[row.Phenotype] = i
			phenotypes = append(phenotypes, PhenotypeProbability{Phenotype: row.Phenotype})
		}
		phenotypes[i].Probability += row.Probability
	}
	sort.SliceStable(phenotypes, func(i, j int) bool {
		return phenotypes[i].Probability > phenotypes[j].Probability
	})

	return Tables{Table: genotypes, Phenotypes: phenotypes}
}

func sortGenotypes(rows []GenotypeProbability) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Probability > rows[j].Probability
	})
}

// GenotypeProbability returns the probability recorded for key.
func (t Tables) GenotypeProbability(key string) (float64, bool) {
	for _, row := range t.Table {
		if row.Key == key {
			return row.Probability, true
		}
	}
	return 0, false
}

// PhenotypeProbability returns the probability recorded for phenotype.
func (t Tables) PhenotypeProbability(phenotype Phenotype) (float64, bool) {
	for _, row := range t.Phenotypes {
		if row.Phenotype == phenotype {
			return row.Probability, true
		}
	}
	return 0, false
}
