package storage

import (
	"context"

	"ratgen/internal/model"
)

// Store defines persistence operations for the breeding colony.
type Store interface {
	Init(ctx context.Context) error
	SaveAnimal(ctx context.Context, animal model.Animal) error
	GetAnimal(ctx context.Context, name string) (model.Animal, bool, error)
	ListAnimals(ctx context.Context) ([]model.Animal, error)
	DeleteAnimal(ctx context.Context, name string) (bool, error)
}
