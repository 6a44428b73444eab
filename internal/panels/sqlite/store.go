// Package sqlite provides SQLite-backed persistence for the panel catalog.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/panelboard/internal/panels"
	"github.com/louisbranch/panelboard/internal/panels/sqlite/migrations"
	"github.com/louisbranch/panelboard/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, used by tests and demos.
const MemoryPath = ":memory:"

// Store provides SQLite-backed access to the panel catalog.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a panel catalog store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != MemoryPath {
		cleanPath := filepath.Clean(path)
		dsn = cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serializes writers anyway; a single pooled connection also keeps
	// in-memory databases from being recreated per connection.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// List returns all panels ordered by position, then id.
func (s *Store) List(ctx context.Context) ([]panels.Panel, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, icon, body, position
		 FROM panels
		 ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list panels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listed []panels.Panel
	for rows.Next() {
		var panel panels.Panel
		if err := rows.Scan(&panel.ID, &panel.Title, &panel.Icon, &panel.Body, &panel.Position); err != nil {
			return nil, fmt.Errorf("scan panel: %w", err)
		}
		listed = append(listed, panel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate panels: %w", err)
	}
	return listed, nil
}

// Get loads a panel by id. The second return value reports whether it exists.
func (s *Store) Get(ctx context.Context, id string) (panels.Panel, bool, error) {
	if s == nil || s.sqlDB == nil {
		return panels.Panel{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return panels.Panel{}, false, fmt.Errorf("panel id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, icon, body, position
		 FROM panels
		 WHERE id = ?`,
		id,
	)

	var panel panels.Panel
	if err := row.Scan(&panel.ID, &panel.Title, &panel.Icon, &panel.Body, &panel.Position); err != nil {
		if err == sql.ErrNoRows {
			return panels.Panel{}, false, nil
		}
		return panels.Panel{}, false, fmt.Errorf("get panel %s: %w", id, err)
	}
	return panel, true, nil
}
