package ratgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ratgen/internal/genetics"
	"ratgen/internal/model"
	"ratgen/internal/roster"
	"ratgen/internal/storage"
)

const defaultDBPath = "ratgen.db"

// AnimalRefPrefix marks a cross parent that names a colony animal instead of
// spelling out a genotype.
const AnimalRefPrefix = "@"

var (
	ErrUnknownAnimal = errors.New("unknown animal")
	ErrInvalidAnimal = errors.New("invalid animal")
)

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store
}

type CrossRequest struct {
	Sire       string
	Dam        string
	LitterSize int
	Seed       *int64
	Rand       genetics.Source
}

type CrossSummary struct {
	Sire         string `json:"sire"`
	Dam          string `json:"dam"`
	SireGenotype string `json:"sire_genotype"`
	DamGenotype  string `json:"dam_genotype"`
	genetics.CrossResult
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Cross resolves colony references and runs the cross. Parents given as
// literal genotypes never touch the store.
func (c *Client) Cross(ctx context.Context, req CrossRequest) (CrossSummary, error) {
	sire, err := c.resolveParent(ctx, req.Sire)
	if err != nil {
		return CrossSummary{}, fmt.Errorf("sire: %w", err)
	}
	dam, err := c.resolveParent(ctx, req.Dam)
	if err != nil {
		return CrossSummary{}, fmt.Errorf("dam: %w", err)
	}

	result, err := genetics.Cross(sire, dam, genetics.CrossOptions{
		LitterSize: req.LitterSize,
		Seed:       req.Seed,
		Rand:       req.Rand,
	})
	if err != nil {
		return CrossSummary{}, err
	}
	return CrossSummary{
		Sire:         req.Sire,
		Dam:          req.Dam,
		SireGenotype: sire,
		DamGenotype:  dam,
		CrossResult:  result,
	}, nil
}

func (c *Client) resolveParent(ctx context.Context, parent string) (string, error) {
	name, ok := strings.CutPrefix(strings.TrimSpace(parent), AnimalRefPrefix)
	if !ok {
		return parent, nil
	}
	if err := c.store.Init(ctx); err != nil {
		return "", err
	}
	animal, found, err := c.store.GetAnimal(ctx, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrUnknownAnimal, name)
	}
	return animal.Genotype, nil
}

// AddAnimal validates and stores an animal, replacing any animal of the same
// name. The stored genotype is the canonical rendering of the parsed one.
func (c *Client) AddAnimal(ctx context.Context, animal model.Animal) (model.Animal, error) {
	normalized, err := normalizeAnimal(animal)
	if err != nil {
		return model.Animal{}, err
	}
	if err := c.store.Init(ctx); err != nil {
		return model.Animal{}, err
	}
	if err := c.store.SaveAnimal(ctx, normalized); err != nil {
		return model.Animal{}, err
	}
	return normalized, nil
}

func (c *Client) GetAnimal(ctx context.Context, name string) (model.Animal, error) {
	if err := c.store.Init(ctx); err != nil {
		return model.Animal{}, err
	}
	animal, ok, err := c.store.GetAnimal(ctx, name)
	if err != nil {
		return model.Animal{}, err
	}
	if !ok {
		return model.Animal{}, fmt.Errorf("%w: %s", ErrUnknownAnimal, name)
	}
	return animal, nil
}

func (c *Client) ListAnimals(ctx context.Context) ([]model.Animal, error) {
	if err := c.store.Init(ctx); err != nil {
		return nil, err
	}
	return c.store.ListAnimals(ctx)
}

func (c *Client) RemoveAnimal(ctx context.Context, name string) error {
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	removed, err := c.store.DeleteAnimal(ctx, name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrUnknownAnimal, name)
	}
	return nil
}

// ImportRoster validates every animal in the YAML roster at path before
// saving any of them, and returns the number saved.
func (c *Client) ImportRoster(ctx context.Context, path string) (int, error) {
	animals, err := roster.LoadFile(path)
	if err != nil {
		return 0, err
	}
	normalized := make([]model.Animal, 0, len(animals))
	for _, animal := range animals {
		n, err := normalizeAnimal(animal)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		normalized = append(normalized, n)
	}

	if err := c.store.Init(ctx); err != nil {
		return 0, err
	}
	for _, animal := range normalized {
		if err := c.store.SaveAnimal(ctx, animal); err != nil {
			return 0, fmt.Errorf("save %s: %w", animal.Name, err)
		}
	}
	return len(normalized), nil
}

func normalizeAnimal(animal model.Animal) (model.Animal, error) {
	animal.Name = strings.TrimSpace(animal.Name)
	if animal.Name == "" {
		return model.Animal{}, fmt.Errorf("%w: name is required", ErrInvalidAnimal)
	}
	if strings.HasPrefix(animal.Name, AnimalRefPrefix) || strings.ContainsAny(animal.Name, ";|/") {
		return model.Animal{}, fmt.Errorf("%w: name %q may not start with %q or contain ';', '|' or '/'", ErrInvalidAnimal, animal.Name, AnimalRefPrefix)
	}

	switch sex := strings.ToLower(strings.TrimSpace(animal.Sex)); sex {
	case "":
		animal.Sex = model.SexUnknown
	case model.SexMale, model.SexFemale, model.SexUnknown:
		animal.Sex = sex
	default:
		return model.Animal{}, fmt.Errorf("%w: %s: sex must be male, female or unknown, got %q", ErrInvalidAnimal, animal.Name, animal.Sex)
	}

	genotype, err := genetics.ParseGenotype(animal.Genotype)
	if err != nil {
		return model.Animal{}, fmt.Errorf("%s: %w", animal.Name, err)
	}
	animal.Genotype = genotype.String()
	storage.Stamp(&animal.VersionedRecord)
	return animal, nil
}
