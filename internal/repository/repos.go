package repository

import (
	"context"

	"officedir-data/internal/batch"
	"officedir-data/internal/domain"
)

// Interfaces the service layer depends on. The Postgres types below
// implement them; tests substitute fakes.

type FloorsRepository interface {
	ListFloors(ctx context.Context) ([]*domain.Floor, error)
	GetFloor(ctx context.Context, number int) (*domain.Floor, error)
	CreateFloor(ctx context.Context, floor *domain.Floor, cloneFrom *int) error
	UpdateFloor(ctx context.Context, number int, floorName, imageURL *string) error
	DeleteFloor(ctx context.Context, number int) error
}

type RoomsRepository interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	UpdateRoom(ctx context.Context, roomID string, patch RoomPatch) (string, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type EmployeesRepository interface {
	ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error)
	ListAllEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) error
	DeleteEmployee(ctx context.Context, id string) error
	FindActiveAdminByEmail(ctx context.Context, email string) (*domain.Employee, error)
	HealthCounts(ctx context.Context) (*domain.HealthCounts, error)
}

type TaxonomyRepository interface {
	EnsureName(ctx context.Context, table, name string) (bool, error)
	ListNames(ctx context.Context, table string) ([]string, error)
}

type ImportRepository interface {
	ImportEmployees(ctx context.Context, records []batch.EmployeeRecord) (*ImportSummary, error)
	ImportNames(ctx context.Context, table string, entries []any) (*ImportSummary, error)
}
