// Package roster loads colony animals from YAML roster files.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ratgen/internal/model"
)

type file struct {
	Animals []entry `yaml:"animals"`
}

type entry struct {
	Name     string `yaml:"name"`
	Sex      string `yaml:"sex"`
	Genotype string `yaml:"genotype"`
	Notes    string `yaml:"notes"`
}

// Load decodes a roster document. Unknown fields are rejected. Animals are
// returned in document order without genotype validation.
func Load(r io.Reader) ([]model.Animal, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Animals))
	animals := make([]model.Animal, 0, len(doc.Animals))
	for i, e := range doc.Animals {
		if e.Name == "" {
			return nil, fmt.Errorf("roster entry %d: name is required", i+1)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("roster entry %d: duplicate name %q", i+1, e.Name)
		}
		seen[e.Name] = struct{}{}
		animals = append(animals, model.Animal{
			Name:     e.Name,
			Sex:      e.Sex,
			Genotype: e.Genotype,
			Notes:    e.Notes,
		})
	}
	return animals, nil
}

// LoadFile reads and decodes the roster at path.
func LoadFile(path string) ([]model.Animal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	animals, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return animals, nil
}
