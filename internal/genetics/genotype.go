package genetics

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrFormat matches every FormatError via errors.Is.
var ErrFormat = errors.New("genotype format")

// FormatError reports a genotype string that does not decompose into the
// modeled loci or into allele pairs.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid genotype %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// AllelePair is the two alleles carried at one locus.
type AllelePair [2]string

// Sorted returns the pair in byte-wise lexicographic order.
func (p AllelePair) Sorted() AllelePair {
	if p[1] < p[0] {
		return AllelePair{p[1], p[0]}
	}
	return p
}

// Has reports whether either allele equals allele.
func (p AllelePair) Has(allele string) bool {
	return p[0] == allele || p[1] == allele
}

// Genotype holds one allele pair per locus, indexed in Loci() order.
type Genotype []AllelePair

// ParseGenotype parses strings such as "A/a; P/p", "Aa;Pp" or "AA|pp".
func ParseGenotype(input string) (Genotype, error) {
	normalized := strings.ReplaceAll(input, "|", ";")
	segments := make([]string, 0, len(loci))
	for _, raw := range strings.Split(normalized, ";") {
		if segment := strings.TrimSpace(raw); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) != len(loci) {
		return nil, &FormatError{
			Input:  input,
			Reason: fmt.Sprintf("expected %d loci separated by ';' (e.g. 'A/a; P/p'), got %d", len(loci), len(segments)),
		}
	}

	genotype := make(Genotype, 0, len(loci))
	for i, segment := range segments {
		pair, err := parseAllelePair(segment)
		if err != nil {
			return nil, &FormatError{Input: input, Reason: loci[i].Name + ": " + err.Error()}
		}
		genotype = append(genotype, pair)
	}
	return genotype, nil
}

func parseAllelePair(segment string) (AllelePair, error) {
	if strings.Contains(segment, "/") {
		tokens := strings.Split(segment, "/")
		if len(tokens) != 2 {
			return AllelePair{}, fmt.Errorf("locus %q must hold exactly two alleles", segment)
		}
		first, second := strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1])
		if first == "" || second == "" || strings.IndexFunc(first+second, unicode.IsSpace) >= 0 {
			return AllelePair{}, fmt.Errorf("locus %q must hold exactly two alleles", segment)
		}
		return AllelePair{first, second}, nil
	}
	if utf8.RuneCountInString(segment) != 2 || strings.IndexFunc(segment, unicode.IsSpace) >= 0 {
		return AllelePair{}, fmt.Errorf("locus %q must hold exactly two alleles", segment)
	}
	first, size := utf8.DecodeRuneInString(segment)
	return AllelePair{string(first), segment[size:]}, nil
}

// String renders the genotype in a form ParseGenotype accepts, keeping the
// parsed allele order.
func (g Genotype) String() string {
	parts := make([]string, len(g))
	for i, pair := range g {
		parts[i] = pair[0] + "/" + pair[1]
	}
	return strings.Join(parts, "; ")
}

// Canonical returns a copy with every allele pair sorted.
func (g Genotype) Canonical() Genotype {
	out := make(Genotype, len(g))
	for i, pair := range g {
		out[i] = pair.Sorted()
	}
	return out
}

// Key is the canonical table key: "AaPp" for single-character alleles,
// "A/aw;P/p" when any allele is longer. Parental allele order never changes
// the key. CrossGenotypes picks one format for its whole table from the
// alleles of both parents.
func (g Genotype) Key() string {
	return g.key(g.singleCharacter())
}

// singleCharacter reports whether every allele is exactly one rune.
func (g Genotype) singleCharacter() bool {
	for _, pair := range g {
		if utf8.RuneCountInString(pair[0]) != 1 || utf8.RuneCountInString(pair[1]) != 1 {
			return false
		}
	}
	return true
}

func (g Genotype) key(short bool) string {
	canonical := g.Canonical()
	var b strings.Builder
	for i, pair := range canonical {
		if short {
			b.WriteString(pair[0])
			b.WriteString(pair[1])
			continue
		}
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(pair[0])
		b.WriteByte('/')
		b.WriteString(pair[1])
	}
	return b.String()
}

// Equal compares allele pairs position by position.
func (g Genotype) Equal(other Genotype) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}
