package storage

import "fmt"

// DefaultStoreKind is the backend used when none is configured. The colony
// must survive between ratgenctl invocations, so it is the sqlite file store.
func DefaultStoreKind() string {
	return "sqlite"
}

// NewStore builds the named backend. "memory" keeps animals for the life of
// the process only.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "":
		return NewStore(DefaultStoreKind(), sqlitePath)
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
