package repository

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/batch"
)

// PostgresImportRepository executes bulk reconciliation batches. A whole
// batch is one transaction: either every record's effects land or none do.
type PostgresImportRepository struct {
	db *sql.DB
}

func NewPostgresImportRepository(db *sql.DB) *PostgresImportRepository {
	return &PostgresImportRepository{db: db}
}

// ImportSummary is the tally an import returns.
type ImportSummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// ImportEmployees merges normalized employee records into current state.
// Per record: register unknown role/department names, upsert the referenced
// room by number, resolve the active/admin outcome against the existing row
// and upsert the employee, merging only the fields the batch supplied.
func (r *PostgresImportRepository) ImportEmployees(ctx context.Context, records []batch.EmployeeRecord) (*ImportSummary, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	summary := &ImportSummary{}
	for _, rec := range records {
		if rec.Role != nil {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, *rec.Role); err != nil {
				return nil, fmt.Errorf("register role: %w", err)
			}
		}
		if rec.Department != nil {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, *rec.Department); err != nil {
				return nil, fmt.Errorf("register department: %w", err)
			}
		}

		if rec.RoomNumber != nil {
			// rooms created by import are keyed by their number
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO rooms (room_id, room_name, room_number, floor, x, y)
				VALUES ($1, $2, $1, $3, NULL, NULL)
				ON CONFLICT (room_id) DO UPDATE SET
					room_name = COALESCE(EXCLUDED.room_name, rooms.room_name),
					room_number = COALESCE(EXCLUDED.room_number, rooms.room_number),
					floor = COALESCE(EXCLUDED.floor, rooms.floor)`,
				*rec.RoomNumber, rec.RoomName, rec.Floor); err != nil {
				return nil, fmt.Errorf("upsert room %s: %w", *rec.RoomNumber, err)
			}
		}

		var prev *batch.PrevEmployee
		var prevRow batch.PrevEmployee
		var prevEmail, prevPassword sql.NullString
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(is_active, 1), COALESCE(is_admin, 0), admin_email, admin_password
			  FROM employees WHERE id = $1`, rec.ID).
			Scan(&prevRow.IsActive, &prevRow.IsAdmin, &prevEmail, &prevPassword)
		switch err {
		case nil:
			if prevEmail.Valid {
				s := prevEmail.String
				prevRow.AdminEmail = &s
			}
			if prevPassword.Valid {
				s := prevPassword.String
				prevRow.AdminPassword = &s
			}
			prev = &prevRow
		case sql.ErrNoRows:
		default:
			return nil, fmt.Errorf("lookup employee %s: %w", rec.ID, err)
		}

		state := batch.ResolveAdminState(rec, prev)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO employees (id, name, name_en, role, department, administration, room_id, floor,
			                       email, phone_office, phone_mobile, is_active, is_admin, admin_email, admin_password)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				name_en = COALESCE(EXCLUDED.name_en, employees.name_en),
				role = COALESCE(EXCLUDED.role, employees.role),
				department = COALESCE(EXCLUDED.department, employees.department),
				administration = COALESCE(EXCLUDED.administration, employees.administration),
				room_id = COALESCE(EXCLUDED.room_id, employees.room_id),
				floor = COALESCE(EXCLUDED.floor, employees.floor),
				email = COALESCE(EXCLUDED.email, employees.email),
				phone_office = COALESCE(EXCLUDED.phone_office, employees.phone_office),
				phone_mobile = COALESCE(EXCLUDED.phone_mobile, employees.phone_mobile),
				is_active = EXCLUDED.is_active,
				is_admin = EXCLUDED.is_admin,
				admin_email = EXCLUDED.admin_email,
				admin_password = EXCLUDED.admin_password`,
			rec.ID, rec.Name, rec.NameEn, rec.Role, rec.Department, rec.Administration,
			rec.RoomNumber, rec.Floor, rec.Email, rec.PhoneOffice, rec.PhoneMobile,
			state.IsActive, state.IsAdmin, state.AdminEmail, state.AdminPassword); err != nil {
			return nil, fmt.Errorf("upsert employee %s: %w", rec.ID, err)
		}

		if prev != nil {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return summary, nil
}

// ImportNames merges a roles or departments batch. Duplicates are no-ops;
// only newly registered names count as inserted.
func (r *PostgresImportRepository) ImportNames(ctx context.Context, table string, entries []any) (*ImportSummary, error) {
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("taxonomy table %q: %w", table, ErrInvalidArgument)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	summary := &ImportSummary{}
	for _, entry := range entries {
		name := batch.Name(entry)
		if name == nil {
			continue
		}
		res, err := tx.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, table), *name)
		if err != nil {
			return nil, fmt.Errorf("register %s name: %w", table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected > 0 {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return summary, nil
}
