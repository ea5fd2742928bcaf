package storage

import (
	"encoding/json"
	"errors"

	"ratgen/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var (
	ErrVersionMismatch = errors.New("record version mismatch")
	ErrNotInitialized  = errors.New("store is not initialized")
)

// Stamp sets the current schema and codec versions on a record.
func Stamp(v *model.VersionedRecord) {
	v.SchemaVersion = CurrentSchemaVersion
	v.CodecVersion = CurrentCodecVersion
}

func EncodeAnimal(a model.Animal) ([]byte, error) {
	return json.Marshal(a)
}

func DecodeAnimal(data []byte) (model.Animal, error) {
	var animal model.Animal
	if err := json.Unmarshal(data, &animal); err != nil {
		return model.Animal{}, err
	}
	if err := checkVersion(animal.VersionedRecord); err != nil {
		return model.Animal{}, err
	}
	return animal, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
