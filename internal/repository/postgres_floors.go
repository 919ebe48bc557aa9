package repository

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/domain"

	"github.com/google/uuid"
)

type PostgresFloorsRepository struct {
	db *sql.DB
}

func NewPostgresFloorsRepository(db *sql.DB) *PostgresFloorsRepository {
	return &PostgresFloorsRepository{db: db}
}

func (r *PostgresFloorsRepository) ListFloors(ctx context.Context) ([]*domain.Floor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT floor_number, floor_name, image_url FROM floors ORDER BY floor_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Floor{}
	for rows.Next() {
		var f domain.Floor
		if err := rows.Scan(&f.FloorNumber, &f.FloorName, &f.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *PostgresFloorsRepository) GetFloor(ctx context.Context, number int) (*domain.Floor, error) {
	var f domain.Floor
	err := r.db.QueryRowContext(ctx,
		`SELECT floor_number, floor_name, image_url FROM floors WHERE floor_number = $1`,
		number).Scan(&f.FloorNumber, &f.FloorName, &f.ImageURL)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("floor %d: %w", number, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFloor inserts a floor and, when cloneFrom is set, copies the source
// floor's image (unless one was supplied) and every room on the source
// floor. Cloned rooms get freshly generated identities; the source ids and
// numbers are never reused as identities. All of it is one transaction.
func (r *PostgresFloorsRepository) CreateFloor(ctx context.Context, floor *domain.Floor, cloneFrom *int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO floors (floor_number, floor_name, image_url) VALUES ($1, $2, $3)`,
		floor.FloorNumber, floor.FloorName, floor.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("floor %d already exists: %w", floor.FloorNumber, ErrConflict)
		}
		return err
	}

	if cloneFrom != nil {
		var srcImage sql.NullString
		err := tx.QueryRowContext(ctx,
			`SELECT image_url FROM floors WHERE floor_number = $1`, *cloneFrom).Scan(&srcImage)
		if err == sql.ErrNoRows {
			return fmt.Errorf("clone source floor %d: %w", *cloneFrom, ErrNotFound)
		}
		if err != nil {
			return err
		}
		if srcImage.Valid && !floor.ImageURL.Valid {
			if _, err := tx.ExecContext(ctx,
				`UPDATE floors SET image_url = $1 WHERE floor_number = $2`,
				srcImage.String, floor.FloorNumber); err != nil {
				return err
			}
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT room_name, room_number, x, y FROM rooms WHERE floor = $1`, *cloneFrom)
		if err != nil {
			return err
		}
		type clonedRoom struct {
			name, number sql.NullString
			x, y         sql.NullFloat64
		}
		var cloned []clonedRoom
		for rows.Next() {
			var c clonedRoom
			if err := rows.Scan(&c.name, &c.number, &c.x, &c.y); err != nil {
				rows.Close()
				return err
			}
			cloned = append(cloned, c)
		}
		if err := rows.Close(); err != nil {
			return err
		}
		for _, c := range cloned {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO rooms (room_id, room_name, room_number, floor, x, y)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), c.name, c.number, floor.FloorNumber, c.x, c.y); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// UpdateFloor merges the supplied fields into the floor row. Absent fields
// keep their stored value.
func (r *PostgresFloorsRepository) UpdateFloor(ctx context.Context, number int, floorName, imageURL *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE floors
		    SET floor_name = COALESCE($1, floor_name),
		        image_url = COALESCE($2, image_url)
		  WHERE floor_number = $3`,
		floorName, imageURL, number)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("floor %d: %w", number, ErrNotFound)
	}
	return nil
}

// DeleteFloor runs the full cascade in one transaction: employees lose
// their references to the floor and its rooms, then the rooms and the floor
// row go away. Concurrent readers never observe a partial cascade.
func (r *PostgresFloorsRepository) DeleteFloor(ctx context.Context, number int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM floors WHERE floor_number = $1)`, number).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("floor %d: %w", number, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE employees SET room_id = NULL
		  WHERE room_id IN (SELECT room_id FROM rooms WHERE floor = $1)`, number); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE employees SET floor = NULL WHERE floor = $1`, number); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rooms WHERE floor = $1`, number); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM floors WHERE floor_number = $1`, number); err != nil {
		return err
	}

	return tx.Commit()
}
