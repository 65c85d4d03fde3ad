// Package store persists the grid matrix and writes it in the background.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Store loads and saves a whole matrix.
type Store interface {
	Load(ctx context.Context) ([][]string, error)
	Save(ctx context.Context, rows [][]string) error
	Close() error
}

const (
	KindCSV    = "csv"
	KindSQLite = "sqlite"
)

// Open returns the store of the named kind at path.
func Open(ctx context.Context, kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindCSV:
		return NewFileStore(path), nil
	case KindSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

func kindOf(s Store) string {
	switch s.(type) {
	case *FileStore:
		return KindCSV
	case *SQLiteStore:
		return KindSQLite
	default:
		return fmt.Sprintf("%T", s)
	}
}
