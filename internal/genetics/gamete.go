package genetics

// Gamete carries one allele per locus and the chance of producing it.
type Gamete struct {
	Alleles     []string `json:"alleles"`
	Probability float64  `json:"probability"`
}

// Gametes enumerates every one-allele-per-locus choice for g with uniform
// probability. Loci assort independently, so a two-locus parent always yields
// four gametes, homozygous duplicates included. Ordering is the Cartesian
// product of each pair in locus order.
func Gametes(g Genotype) []Gamete {
	if len(g) == 0 {
		return nil
	}
	combos := [][]string{{}}
	for _, pair := range g {
		next := make([][]string, 0, len(combos)*len(pair))
		for _, prefix := range combos {
			for _, allele := range pair {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, allele))
			}
		}
		combos = next
	}

	prob := 1 / float64(len(combos))
	gametes := make([]Gamete, 0, len(combos))
	for _, alleles := range combos {
		gametes = append(gametes, Gamete{Alleles: alleles, Probability: prob})
	}
	return gametes
}

// Fertilize joins two gametes into an offspring genotype with sorted pairs.
func Fertilize(a, b Gamete) Genotype {
	n := len(a.Alleles)
	if len(b.Alleles) < n {
		n = len(b.Alleles)
	}
	offspring := make(Genotype, n)
	for i := 0; i < n; i++ {
		offspring[i] = AllelePair{a.Alleles[i], b.Alleles[i]}.Sorted()
	}
	return offspring
}
