package genetics

// Locus is a gene position in the model. Symbol is the dominant allele; any
// other allele at the locus is treated as recessive.
type Locus struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Agouti (A over a) and pink-eyed dilution (P over p).
var loci = [...]Locus{
	{Symbol: "A", Name: "agouti"},
	{Symbol: "P", Name: "pink-eyed dilution"},
}

// Loci returns the modeled loci in their fixed order.
func Loci() []Locus {
	out := make([]Locus, len(loci))
	copy(out, loci[:])
	return out
}
