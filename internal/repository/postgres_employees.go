package repository

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/domain"
)

type PostgresEmployeesRepository struct {
	db *sql.DB
}

func NewPostgresEmployeesRepository(db *sql.DB) *PostgresEmployeesRepository {
	return &PostgresEmployeesRepository{db: db}
}

const employeeColumns = `id, name, name_en, role, department, administration, room_id, floor,
	email, phone_office, phone_mobile, COALESCE(is_active, 1), COALESCE(is_admin, 0), admin_email, admin_password`

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.NameEn, &e.Role, &e.Department, &e.Administration,
		&e.RoomID, &e.Floor, &e.Email, &e.PhoneOffice, &e.PhoneMobile,
		&e.IsActive, &e.IsAdmin, &e.AdminEmail, &e.AdminPassword,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListActiveEmployees is the public directory projection: visible entries
// only, sorted by name.
func (r *PostgresEmployeesRepository) ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM employees WHERE COALESCE(is_active, 1) = 1 ORDER BY name`, employeeColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListAllEmployees returns every row, active or not, ordered by id. Used by
// the export path.
func (r *PostgresEmployeesRepository) ListAllEmployees(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM employees ORDER BY id`, employeeColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresEmployeesRepository) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM employees WHERE id = $1`, employeeColumns), id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeesRepository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, name_en, role, department, administration, room_id, floor,
		                       email, phone_office, phone_mobile, is_active, is_admin, admin_email, admin_password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		e.ID, e.Name, e.NameEn, e.Role, e.Department, e.Administration, e.RoomID, e.Floor,
		e.Email, e.PhoneOffice, e.PhoneMobile, e.IsActive, e.IsAdmin, e.AdminEmail, e.AdminPassword)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s already exists: %w", e.ID, ErrConflict)
		}
		return err
	}
	return nil
}

// EmployeePatch carries the supplied fields of an employee update plus the
// resolved admin/active outcome. The merge fields follow COALESCE rules;
// the resolved fields are always written.
type EmployeePatch struct {
	Name           *string
	NameEn         *string
	Role           *string
	Department     *string
	Administration *string
	RoomID         *string
	Floor          *int
	Email          *string
	PhoneOffice    *string
	PhoneMobile    *string
	IsActive       int
	IsAdmin        int
	AdminEmail     *string
	AdminPassword  *string
}

func (r *PostgresEmployeesRepository) UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		   SET name = COALESCE($1, name),
		       name_en = COALESCE($2, name_en),
		       role = COALESCE($3, role),
		       department = COALESCE($4, department),
		       administration = COALESCE($5, administration),
		       room_id = COALESCE($6, room_id),
		       floor = COALESCE($7, floor),
		       email = COALESCE($8, email),
		       phone_office = COALESCE($9, phone_office),
		       phone_mobile = COALESCE($10, phone_mobile),
		       is_active = $11,
		       is_admin = $12,
		       admin_email = $13,
		       admin_password = $14
		 WHERE id = $15`,
		patch.Name, patch.NameEn, patch.Role, patch.Department, patch.Administration,
		patch.RoomID, patch.Floor, patch.Email, patch.PhoneOffice, patch.PhoneMobile,
		patch.IsActive, patch.IsAdmin, patch.AdminEmail, patch.AdminPassword, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes the row; deleting an absent employee is a no-op.
func (r *PostgresEmployeesRepository) DeleteEmployee(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

// FindActiveAdminByEmail resolves a login candidate. Inactive or non-admin
// rows never match.
func (r *PostgresEmployeesRepository) FindActiveAdminByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM employees
		 WHERE is_admin = 1 AND COALESCE(is_active, 1) = 1 AND admin_email = $1`, employeeColumns), email))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// HealthCounts backs the health endpoint.
func (r *PostgresEmployeesRepository) HealthCounts(ctx context.Context) (*domain.HealthCounts, error) {
	var c domain.HealthCounts
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&c.Rooms); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&c.Employees); err != nil {
		return nil, err
	}
	c.OK = true
	return &c, nil
}
