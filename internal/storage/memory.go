package storage

import (
	"context"
	"sort"
	"sync"

	"ratgen/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	animals     map[string]model.Animal
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	s.initialized = true
	s.animals = make(map[string]model.Animal)
	return nil
}

func (s *MemoryStore) SaveAnimal(_ context.Context, animal model.Animal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.animals[animal.Name] = animal
	return nil
}

func (s *MemoryStore) GetAnimal(_ context.Context, name string) (model.Animal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return model.Animal{}, false, ErrNotInitialized
	}
	animal, ok := s.animals[name]
	return animal, ok, nil
}

func (s *MemoryStore) ListAnimals(_ context.Context) ([]model.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]model.Animal, 0, len(s.animals))
	for _, animal := range s.animals {
		out = append(out, animal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) DeleteAnimal(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return false, ErrNotInitialized
	}
	_, ok := s.animals[name]
	delete(s.animals, name)
	return ok, nil
}
