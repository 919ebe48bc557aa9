package repository

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/domain"
)

type PostgresRoomsRepository struct {
	db *sql.DB
}

func NewPostgresRoomsRepository(db *sql.DB) *PostgresRoomsRepository {
	return &PostgresRoomsRepository{db: db}
}

func (r *PostgresRoomsRepository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT room_id, room_name, room_number, floor, x, y FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Room{}
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.RoomID, &room.RoomName, &room.RoomNumber, &room.Floor, &room.X, &room.Y); err != nil {
			return nil, err
		}
		out = append(out, &room)
	}
	return out, rows.Err()
}

func (r *PostgresRoomsRepository) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.QueryRowContext(ctx,
		`SELECT room_id, room_name, room_number, floor, x, y FROM rooms WHERE room_id = $1`,
		roomID).Scan(&room.RoomID, &room.RoomName, &room.RoomNumber, &room.Floor, &room.X, &room.Y)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom inserts a room whose identity is its number. The primary key
// is the uniqueness arbiter; a duplicate number surfaces as Conflict even
// when two requests race past any pre-check.
func (r *PostgresRoomsRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (room_id, room_name, room_number, floor, x, y)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.RoomID, room.RoomName, room.RoomNumber, room.Floor, room.X, room.Y)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room number %s already exists: %w", room.RoomID, ErrConflict)
		}
		return err
	}
	return nil
}

// RoomPatch carries the supplied fields of a room update. nil means "no
// change", including a renumber to the room's current number.
type RoomPatch struct {
	RoomNumber *string
	RoomName   *string
	Floor      *int
	X          *float64
	Y          *float64
}

// UpdateRoom merges patch into the room and returns the room's (possibly
// new) identity. A renumber moves the identity and every employee reference
// in the same transaction, so no employee ever points at a missing room.
func (r *PostgresRoomsRepository) UpdateRoom(ctx context.Context, roomID string, patch RoomPatch) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentID string
	err = tx.QueryRowContext(ctx,
		`SELECT room_id FROM rooms WHERE room_id = $1`, roomID).Scan(&currentID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	targetID := currentID
	if patch.RoomNumber != nil && *patch.RoomNumber != currentID {
		newID := *patch.RoomNumber
		var taken bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM rooms WHERE room_id = $1)`, newID).Scan(&taken); err != nil {
			return "", err
		}
		if taken {
			return "", fmt.Errorf("room number %s already exists: %w", newID, ErrConflict)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE rooms SET room_id = $1, room_number = $1 WHERE room_id = $2`,
			newID, currentID); err != nil {
			if isUniqueViolation(err) {
				return "", fmt.Errorf("room number %s already exists: %w", newID, ErrConflict)
			}
			return "", err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE employees SET room_id = $1 WHERE room_id = $2`,
			newID, currentID); err != nil {
			return "", err
		}
		targetID = newID
	} else if patch.RoomNumber != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE rooms SET room_number = $1 WHERE room_id = $2`,
			*patch.RoomNumber, currentID); err != nil {
			return "", err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms
		    SET room_name = COALESCE($1, room_name),
		        floor = COALESCE($2, floor),
		        x = COALESCE($3, x),
		        y = COALESCE($4, y)
		  WHERE room_id = $5`,
		patch.RoomName, patch.Floor, patch.X, patch.Y, targetID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return targetID, nil
}

// DeleteRoom nulls employee references and removes the room. Deleting an
// absent room is a no-op.
func (r *PostgresRoomsRepository) DeleteRoom(ctx context.Context, roomID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE employees SET room_id = NULL WHERE room_id = $1`, roomID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rooms WHERE room_id = $1`, roomID); err != nil {
		return err
	}

	return tx.Commit()
}
