package service

import (
	"context"
	"fmt"

	"officedir-data/internal/domain"
	"officedir-data/internal/repository"
)

// DirectoryService is the read-side facade: the projections the public
// directory and the admin UI render.
type DirectoryService interface {
	ListActiveEmployees(ctx context.Context) ([]domain.EmployeeView, error)
	Taxonomy(ctx context.Context) (*domain.Taxonomy, error)
	HealthCounts(ctx context.Context) (*domain.HealthCounts, error)
}

type directoryService struct {
	employees repository.EmployeesRepository
	taxonomy  repository.TaxonomyRepository
}

func NewDirectoryService(employees repository.EmployeesRepository, taxonomy repository.TaxonomyRepository) DirectoryService {
	return &directoryService{employees: employees, taxonomy: taxonomy}
}

func (s *directoryService) ListActiveEmployees(ctx context.Context) ([]domain.EmployeeView, error) {
	employees, err := s.employees.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	out := make([]domain.EmployeeView, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.View())
	}
	return out, nil
}

func (s *directoryService) Taxonomy(ctx context.Context) (*domain.Taxonomy, error) {
	roles, err := s.taxonomy.ListNames(ctx, "roles")
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	departments, err := s.taxonomy.ListNames(ctx, "departments")
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return &domain.Taxonomy{Roles: roles, Departments: departments}, nil
}

func (s *directoryService) HealthCounts(ctx context.Context) (*domain.HealthCounts, error) {
	counts, err := s.employees.HealthCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("health counts: %w", err)
	}
	return counts, nil
}
