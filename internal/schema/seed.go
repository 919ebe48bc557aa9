package schema

import (
	"context"
	"fmt"

	"officedir-data/internal/credentials"
)

type seedFloor struct {
	number int
	name   string
	image  string
}

type seedRoom struct {
	id, name, number string
	floor            int
	x, y             float64
}

type seedEmployee struct {
	id, name, nameEn, role, department, administration string
	roomID                                             string
	floor                                              int
	email, phoneOffice, phoneMobile                    string
	isAdmin                                            bool
	adminEmail, adminPassword                          string
}

var seedFloors = []seedFloor{
	{1, "Ground Floor", "https://via.placeholder.com/1600x1000/eeeeee/222?text=Floor+1"},
	{2, "Office Floor", "https://via.placeholder.com/1600x1000/eeeeee/222?text=Floor+2"},
	{3, "Management Floor", "https://via.placeholder.com/1600x1000/eeeeee/222?text=Floor+3"},
}

var seedRooms = []seedRoom{
	{"101", "Meeting Room A", "101", 1, 25.5, 30.2},
	{"102", "Kitchenette", "102", 1, 75.0, 20.5},
	{"201", "Meeting Room B", "201", 2, 40.3, 60.8},
	{"202", "Lounge", "202", 2, 80.1, 70.2},
	{"301", "IT Department", "301", 3, 50.0, 40.0},
}

var seedEmployees = []seedEmployee{
	{
		id: "1", name: "Dana Levi", nameEn: "Dana Levi",
		role: "Development Manager", department: "Development", administration: "Technical",
		roomID: "101", floor: 1,
		email: "dana@example.com", phoneOffice: "03-5551234", phoneMobile: "050-1234567",
		isAdmin: true, adminEmail: "dana@example.com", adminPassword: "1234",
	},
	{
		id: "2", name: "Ben Cohen", nameEn: "Ben Cohen",
		role: "UX Designer", department: "Design",
		roomID: "201", floor: 2,
		email: "ben@example.com", phoneOffice: "03-5555678",
	},
}

// SeedIfEmpty loads demo data when the floors table is empty. Dev
// convenience only; the flag guarding it defaults to off.
func (m *Manager) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM floors`).Scan(&count); err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, f := range seedFloors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO floors (floor_number, floor_name, image_url) VALUES ($1, $2, $3)`,
			f.number, f.name, f.image); err != nil {
			return fmt.Errorf("seed floor %d failed: %w", f.number, err)
		}
	}
	for _, r := range seedRooms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rooms (room_id, room_name, room_number, floor, x, y) VALUES ($1, $2, $3, $4, $5, $6)`,
			r.id, r.name, r.number, r.floor, r.x, r.y); err != nil {
			return fmt.Errorf("seed room %s failed: %w", r.id, err)
		}
	}
	for _, e := range seedEmployees {
		if e.role != "" {
			if _, err := tx.ExecContext(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, e.role); err != nil {
				return fmt.Errorf("seed role failed: %w", err)
			}
		}
		if e.department != "" {
			if _, err := tx.ExecContext(ctx, `INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, e.department); err != nil {
				return fmt.Errorf("seed department failed: %w", err)
			}
		}
		var adminEmail, adminPassword any
		isAdmin := 0
		if e.isAdmin {
			isAdmin = 1
			adminEmail = e.adminEmail
			adminPassword = credentials.Hash(e.adminPassword)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO employees (id, name, name_en, role, department, administration, room_id, floor,
			                       email, phone_office, phone_mobile, is_active, is_admin, admin_email, admin_password)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $13, $14)`,
			e.id, e.name, nullIfEmpty(e.nameEn), nullIfEmpty(e.role), nullIfEmpty(e.department),
			nullIfEmpty(e.administration), nullIfEmpty(e.roomID), e.floor,
			nullIfEmpty(e.email), nullIfEmpty(e.phoneOffice), nullIfEmpty(e.phoneMobile),
			isAdmin, adminEmail, adminPassword); err != nil {
			return fmt.Errorf("seed employee %s failed: %w", e.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit failed: %w", err)
	}
	m.logger.Info("seeded demo directory data")
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
