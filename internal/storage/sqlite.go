package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"ratgen/internal/model"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveAnimal(ctx context.Context, animal model.Animal) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeAnimal(animal)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO animals (name, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, animal.Name, animal.SchemaVersion, animal.CodecVersion, payload)
	return err
}

func (s *SQLiteStore) GetAnimal(ctx context.Context, name string) (model.Animal, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return model.Animal{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM animals WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Animal{}, false, nil
	}
	if err != nil {
		return model.Animal{}, false, err
	}

	animal, err := DecodeAnimal(payload)
	if err != nil {
		return model.Animal{}, false, fmt.Errorf("decode animal %s: %w", name, err)
	}
	return animal, true, nil
}

func (s *SQLiteStore) ListAnimals(ctx context.Context) ([]model.Animal, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT name, payload FROM animals ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []model.Animal
	for rows.Next() {
		var (
			name    string
			payload []byte
		)
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, err
		}
		animal, err := DecodeAnimal(payload)
		if err != nil {
			return nil, fmt.Errorf("decode animal %s: %w", name, err)
		}
		animals = append(animals, animal)
	}
	return animals, rows.Err()
}

func (s *SQLiteStore) DeleteAnimal(ctx context.Context, name string) (bool, error) {
	db, err := s.getDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM animals WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS animals (
			name TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	return err
}
