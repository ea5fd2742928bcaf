package genetics

// Phenotype is an observable coat color category.
type Phenotype string

const (
	Agouti     Phenotype = "Agouti"
	Black      Phenotype = "Black"
	SilverFawn Phenotype = "Silver Fawn"
	Beige      Phenotype = "Beige"
)

// Phenotypes lists every category in decision table order.
func Phenotypes() []Phenotype {
	return []Phenotype{Agouti, Black, SilverFawn, Beige}
}

// dominance records whether the dominant allele is present at each locus.
type dominance struct {
	agouti   bool
	dilution bool
}

var phenotypeTable = map[dominance]Phenotype{
	{agouti: true, dilution: true}:   Agouti,
	{agouti: false, dilution: true}:  Black,
	{agouti: true, dilution: false}:  SilverFawn,
	{agouti: false, dilution: false}: Beige,
}

// PhenotypeOf maps a two-locus genotype onto its coat color.
func PhenotypeOf(g Genotype) Phenotype {
	return phenotypeTable[dominanceOf(g)]
}

func dominanceOf(g Genotype) dominance {
	var d dominance
	if len(g) > 0 {
		d.agouti = g[0].Has(loci[0].Symbol)
	}
	if len(g) > 1 {
		d.dilution = g[1].Has(loci[1].Symbol)
	}
	return d
}
