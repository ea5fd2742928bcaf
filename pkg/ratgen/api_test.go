package ratgen

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"ratgen/internal/genetics"
	"ratgen/internal/model"
)

func newMemoryClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Options{StoreKind: "memory"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return client
}

func TestClientCrossLiteralGenotypes(t *testing.T) {
	client := newMemoryClient(t)
	seed := int64(3)
	summary, err := client.Cross(context.Background(), CrossRequest{
		Sire:       "A/a; P/p",
		Dam:        "A/a; p/p",
		LitterSize: 10,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	if summary.SireGenotype != "A/a; P/p" || summary.DamGenotype != "A/a; p/p" {
		t.Fatalf("unexpected resolved genotypes: %+v", summary)
	}
	if p, _ := summary.PhenotypeProbability(genetics.SilverFawn); math.Abs(p-0.375) > 1e-9 {
		t.Fatalf("expected silver fawn at 0.375, got %f", p)
	}
	if len(summary.Litter) != 10 {
		t.Fatalf("expected litter of 10, got %d", len(summary.Litter))
	}
}

func TestClientCrossResolvesColonyAnimals(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)
	if _, err := client.AddAnimal(ctx, model.Animal{Name: "Hazel", Sex: "Female", Genotype: "Aa|Pp"}); err != nil {
		t.Fatalf("add hazel: %v", err)
	}
	if _, err := client.AddAnimal(ctx, model.Animal{Name: "Oak", Genotype: "aa;pp"}); err != nil {
		t.Fatalf("add oak: %v", err)
	}

	summary, err := client.Cross(ctx, CrossRequest{Sire: "@Oak", Dam: " @Hazel"})
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	if summary.SireGenotype != "a/a; p/p" || summary.DamGenotype != "A/a; P/p" {
		t.Fatalf("unexpected resolved genotypes: %+v", summary)
	}
	direct, err := genetics.Cross("aa;pp", "Aa;Pp", genetics.CrossOptions{})
	if err != nil {
		t.Fatalf("direct cross: %v", err)
	}
	if !reflect.DeepEqual(summary.Tables, direct.Tables) {
		t.Fatalf("colony cross differs from direct cross")
	}
}

func TestClientCrossUnknownAnimal(t *testing.T) {
	client := newMemoryClient(t)
	_, err := client.Cross(context.Background(), CrossRequest{Sire: "@Ghost", Dam: "Aa;Pp"})
	if !errors.Is(err, ErrUnknownAnimal) {
		t.Fatalf("expected ErrUnknownAnimal, got %v", err)
	}
}

func TestClientCrossPropagatesFormatError(t *testing.T) {
	client := newMemoryClient(t)
	_, err := client.Cross(context.Background(), CrossRequest{Sire: "Aa", Dam: "Aa;Pp"})
	if !errors.Is(err, genetics.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	var formatErr *genetics.FormatError
	if !errors.As(err, &formatErr) || formatErr.Input != "Aa" {
		t.Fatalf("expected FormatError for sire, got %v", err)
	}
}

func TestClientAddAnimalValidates(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)
	cases := []model.Animal{
		{Name: "", Genotype: "Aa;Pp"},
		{Name: "@Hazel", Genotype: "Aa;Pp"},
		{Name: "Ha;zel", Genotype: "Aa;Pp"},
		{Name: "Hazel", Sex: "hermaphrodite", Genotype: "Aa;Pp"},
	}
	for _, animal := range cases {
		if _, err := client.AddAnimal(ctx, animal); !errors.Is(err, ErrInvalidAnimal) {
			t.Fatalf("expected ErrInvalidAnimal for %+v, got %v", animal, err)
		}
	}
	if _, err := client.AddAnimal(ctx, model.Animal{Name: "Hazel", Genotype: "Aa"}); !errors.Is(err, genetics.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}

	added, err := client.AddAnimal(ctx, model.Animal{Name: " Hazel ", Genotype: "Aa;Pp"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Name != "Hazel" || added.Sex != model.SexUnknown || added.Genotype != "A/a; P/p" {
		t.Fatalf("unexpected normalized animal: %+v", added)
	}
}

func TestClientAnimalLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)
	if _, err := client.AddAnimal(ctx, model.Animal{Name: "Hazel", Genotype: "Aa;Pp"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := client.GetAnimal(ctx, "Hazel")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Genotype != "A/a; P/p" {
		t.Fatalf("unexpected genotype %q", got.Genotype)
	}
	if err := client.RemoveAnimal(ctx, "Hazel"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := client.RemoveAnimal(ctx, "Hazel"); !errors.Is(err, ErrUnknownAnimal) {
		t.Fatalf("expected ErrUnknownAnimal on second remove, got %v", err)
	}
	if _, err := client.GetAnimal(ctx, "Hazel"); !errors.Is(err, ErrUnknownAnimal) {
		t.Fatalf("expected ErrUnknownAnimal, got %v", err)
	}
}

func TestClientImportRoster(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)
	path := filepath.Join(t.TempDir(), "colony.yaml")
	roster := "animals:\n  - name: Hazel\n    sex: female\n    genotype: Aa;Pp\n  - name: Oak\n    sex: male\n    genotype: aa;pp\n"
	if err := os.WriteFile(path, []byte(roster), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	n, err := client.ImportRoster(ctx, path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}
	animals, err := client.ListAnimals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(animals) != 2 || animals[0].Name != "Hazel" || animals[1].Genotype != "a/a; p/p" {
		t.Fatalf("unexpected animals: %+v", animals)
	}
}

func TestClientImportRosterIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	client := newMemoryClient(t)
	path := filepath.Join(t.TempDir(), "colony.yaml")
	roster := "animals:\n  - name: Hazel\n    genotype: Aa;Pp\n  - name: Broken\n    genotype: Aa\n"
	if err := os.WriteFile(path, []byte(roster), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if _, err := client.ImportRoster(ctx, path); !errors.Is(err, genetics.ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	animals, err := client.ListAnimals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(animals) != 0 {
		t.Fatalf("expected nothing saved, got %+v", animals)
	}
}

func TestNewRejectsUnknownStore(t *testing.T) {
	if _, err := New(Options{StoreKind: "postgres"}); err == nil {
		t.Fatal("expected unsupported store error")
	}
}
