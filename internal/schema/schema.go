// Package schema ensures the directory tables exist before any core
// operation runs. Migration is additive-only: tables and columns are created
// when missing, nothing is dropped or rewritten.
package schema

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type Manager struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewManager(db *sql.DB, logger *zap.Logger) *Manager {
	return &Manager{db: db, logger: logger}
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS floors (
		floor_number INTEGER PRIMARY KEY,
		floor_name TEXT,
		image_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_id TEXT PRIMARY KEY,
		room_name TEXT,
		room_number TEXT,
		floor INTEGER,
		x DOUBLE PRECISION,
		y DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT,
		name_en TEXT,
		role TEXT,
		department TEXT,
		administration TEXT,
		room_id TEXT,
		floor INTEGER,
		email TEXT,
		phone_office TEXT,
		phone_mobile TEXT,
		is_active INTEGER DEFAULT 1,
		is_admin INTEGER DEFAULT 0,
		admin_email TEXT,
		admin_password TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		name TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		name TEXT PRIMARY KEY
	)`,
}

// legacyColumns are columns added after the first deployments; rows created
// before them are backfilled below.
var legacyColumns = []struct {
	table, column, definition string
}{
	{"floors", "floor_name", "TEXT"},
	{"employees", "name_en", "TEXT"},
	{"employees", "administration", "TEXT"},
	{"employees", "is_admin", "INTEGER DEFAULT 0"},
	{"employees", "admin_email", "TEXT"},
	{"employees", "admin_password", "TEXT"},
	{"employees", "email", "TEXT"},
	{"employees", "phone_office", "TEXT"},
	{"employees", "phone_mobile", "TEXT"},
	{"employees", "is_active", "INTEGER DEFAULT 1"},
}

// Ensure creates missing tables and columns and backfills defaults.
func (m *Manager) Ensure(ctx context.Context) error {
	for _, stmt := range createStatements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema create failed: %w", err)
		}
	}

	for _, c := range legacyColumns {
		if err := m.ensureColumn(ctx, c.table, c.column, c.definition); err != nil {
			return err
		}
	}

	// legacy rows predate the is_active column
	if _, err := m.db.ExecContext(ctx, `UPDATE employees SET is_active = 1 WHERE is_active IS NULL`); err != nil {
		return fmt.Errorf("is_active backfill failed: %w", err)
	}

	m.logger.Info("schema ensured")
	return nil
}

func (m *Manager) ensureColumn(ctx context.Context, table, column, definition string) error {
	var exists bool
	err := m.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	if err != nil {
		return fmt.Errorf("column check failed for %s.%s: %w", table, column, err)
	}
	if exists {
		return nil
	}
	stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition)
	if _, err := m.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("add column %s.%s failed: %w", table, column, err)
	}
	m.logger.Info("added missing column",
		zap.String("table", table),
		zap.String("column", column),
	)
	return nil
}
