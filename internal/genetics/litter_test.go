package genetics

import (
	"reflect"
	"testing"
)

type fixedSource struct {
	draws []float64
	next  int
}

func (s *fixedSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func TestSampleLitterUsesCumulativeTableOrder(t *testing.T) {
	table := []PhenotypeProbability{
		{Phenotype: Agouti, Probability: 0.5},
		{Phenotype: Black, Probability: 0.25},
		{Phenotype: Beige, Probability: 0.25},
	}
	src := &fixedSource{draws: []float64{0.0, 0.5, 0.5001, 0.75, 0.9}}
	got := SampleLitter(table, 5, src)
	want := []Phenotype{Agouti, Agouti, Black, Black, Beige}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSampleLitterFallsBackToLastRow(t *testing.T) {
	table := []PhenotypeProbability{
		{Phenotype: Agouti, Probability: 0.6},
		{Phenotype: Black, Probability: 0.3999999},
	}
	got := SampleLitter(table, 1, &fixedSource{draws: []float64{0.99999999}})
	if len(got) != 1 || got[0] != Black {
		t.Fatalf("expected fallback to last phenotype, got %v", got)
	}
}

func TestSampleLitterReturnsNilForNonPositiveSize(t *testing.T) {
	table := []PhenotypeProbability{{Phenotype: Agouti, Probability: 1}}
	if got := SampleLitter(table, 0, &fixedSource{draws: []float64{0}}); got != nil {
		t.Fatalf("expected nil litter, got %v", got)
	}
	result, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 0})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	if result.Litter != nil {
		t.Fatalf("expected absent litter, got %v", result.Litter)
	}
}

func TestCrossSeededLitterIsReproducible(t *testing.T) {
	seed := int64(42)
	first, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 12, Seed: &seed})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	// Unseeded draws in between must not disturb a seeded call.
	if _, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 7}); err != nil {
		t.Fatalf("cross: %v", err)
	}
	second, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 12, Seed: &seed})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	if !reflect.DeepEqual(first.Litter, second.Litter) {
		t.Fatalf("seeded litters differ: %v vs %v", first.Litter, second.Litter)
	}
}

func TestCrossUnseededLittersDiffer(t *testing.T) {
	first, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 24})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	second, err := Cross("Aa;Pp", "Aa;Pp", CrossOptions{LitterSize: 24})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	if reflect.DeepEqual(first.Litter, second.Litter) {
		t.Fatalf("expected unseeded litters to differ, both were %v", first.Litter)
	}
}

func TestCrossLitterSizeAndMembership(t *testing.T) {
	seed := int64(7)
	for _, n := range []int{1, 5, 33} {
		result, err := Cross("A/a; P/p", "A/a; p/p", CrossOptions{LitterSize: n, Seed: &seed})
		if err != nil {
			t.Fatalf("cross: %v", err)
		}
		if len(result.Litter) != n {
			t.Fatalf("expected %d pups, got %d", n, len(result.Litter))
		}
		for _, pup := range result.Litter {
			if _, ok := result.PhenotypeProbability(pup); !ok {
				t.Fatalf("pup phenotype %s not in table %+v", pup, result.Phenotypes)
			}
		}
	}
}

func TestCrossExplicitSourceWinsOverSeed(t *testing.T) {
	seed := int64(1)
	result, err := Cross("Aa;Pp", "aa;pp", CrossOptions{
		LitterSize: 3,
		Seed:       &seed,
		Rand:       &fixedSource{draws: []float64{0}},
	})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	first := result.Phenotypes[0].Phenotype
	for _, pup := range result.Litter {
		if pup != first {
			t.Fatalf("expected every pup to be %s with a zero draw, got %v", first, result.Litter)
		}
	}
}
