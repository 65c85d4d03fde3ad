package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/gridpop/internal/logging/events"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the matrix in two tables: grid_rows records each row's
// width so empty rows survive, grid_cells holds the values.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating when missing) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection keeps pragmas and the save transaction on the same handle.
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS grid_rows (
			row_idx INTEGER PRIMARY KEY,
			width INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS grid_cells (
			row_idx INTEGER NOT NULL,
			col_idx INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (row_idx, col_idx)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Load reads the matrix in row order.
func (s *SQLiteStore) Load(ctx context.Context) ([][]string, error) {
	rowsQ, err := s.db.QueryContext(ctx, `SELECT row_idx, width FROM grid_rows ORDER BY row_idx`)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rowsQ.Close()

	var matrix [][]string
	index := map[int]int{}
	for rowsQ.Next() {
		var idx, width int
		if err := rowsQ.Scan(&idx, &width); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		index[idx] = len(matrix)
		matrix = append(matrix, make([]string, width))
	}
	if err := rowsQ.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	if err := rowsQ.Close(); err != nil {
		return nil, err
	}

	cellsQ, err := s.db.QueryContext(ctx, `SELECT row_idx, col_idx, value FROM grid_cells`)
	if err != nil {
		return nil, fmt.Errorf("query cells: %w", err)
	}
	defer cellsQ.Close()
	for cellsQ.Next() {
		var r, c int
		var value string
		if err := cellsQ.Scan(&r, &c, &value); err != nil {
			return nil, fmt.Errorf("scan cell: %w", err)
		}
		pos, ok := index[r]
		if !ok || c < 0 || c >= len(matrix[pos]) {
			continue
		}
		matrix[pos][c] = value
	}
	if err := cellsQ.Err(); err != nil {
		return nil, fmt.Errorf("iterate cells: %w", err)
	}
	events.Store.Load(KindSQLite, len(matrix))
	return matrix, nil
}

// Save replaces the stored matrix in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, rows [][]string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM grid_cells`); err != nil {
		return fmt.Errorf("clear cells: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM grid_rows`); err != nil {
		return fmt.Errorf("clear rows: %w", err)
	}
	rowStmt, err := tx.PrepareContext(ctx, `INSERT INTO grid_rows (row_idx, width) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rows: %w", err)
	}
	defer rowStmt.Close()
	cellStmt, err := tx.PrepareContext(ctx, `INSERT INTO grid_cells (row_idx, col_idx, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cells: %w", err)
	}
	defer cellStmt.Close()

	for r, row := range rows {
		if _, err = rowStmt.ExecContext(ctx, r, len(row)); err != nil {
			return fmt.Errorf("insert row %d: %w", r, err)
		}
		for c, value := range row {
			if _, err = cellStmt.ExecContext(ctx, r, c, value); err != nil {
				return fmt.Errorf("insert cell %d,%d: %w", r, c, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
