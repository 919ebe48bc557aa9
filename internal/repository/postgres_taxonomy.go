package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresTaxonomyRepository tracks the distinct role and department names.
// Insert-if-absent only; nothing updates or deletes taxonomy entries.
type PostgresTaxonomyRepository struct {
	db *sql.DB
}

func NewPostgresTaxonomyRepository(db *sql.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{db: db}
}

// taxonomyTables guards against interpolating anything but the two known
// table names into SQL.
var taxonomyTables = map[string]bool{
	"roles":       true,
	"departments": true,
}

// EnsureName registers a name in the given set. Returns true when the name
// was new.
func (r *PostgresTaxonomyRepository) EnsureName(ctx context.Context, table, name string) (bool, error) {
	if !taxonomyTables[table] {
		return false, fmt.Errorf("taxonomy table %q: %w", table, ErrInvalidArgument)
	}
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, table), name)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresTaxonomyRepository) ListNames(ctx context.Context, table string) ([]string, error) {
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("taxonomy table %q: %w", table, ErrInvalidArgument)
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
