package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"officedir-data/internal/batch"
	"officedir-data/internal/domain"
	"officedir-data/internal/repository"
)

// In-memory fakes for the repository interfaces. Unit tests use these so
// the service rules can be checked without a database.

type fakeEmployeesRepo struct {
	mu        sync.Mutex
	employees map[string]*domain.Employee
}

func newFakeEmployeesRepo() *fakeEmployeesRepo {
	return &fakeEmployeesRepo{employees: make(map[string]*domain.Employee)}
}

func (f *fakeEmployeesRepo) ListActiveEmployees(_ context.Context) ([]*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Employee{}
	for _, e := range f.employees {
		if e.IsActive == 1 {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name.String < out[j].Name.String })
	return out, nil
}

func (f *fakeEmployeesRepo) ListAllEmployees(_ context.Context) ([]*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Employee{}
	for _, e := range f.employees {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployeesRepo) GetEmployee(_ context.Context, id string) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
	}
	c := *e
	return &c, nil
}

func (f *fakeEmployeesRepo) CreateEmployee(_ context.Context, e *domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[e.ID]; ok {
		return fmt.Errorf("employee %s already exists: %w", e.ID, repository.ErrConflict)
	}
	c := *e
	f.employees[e.ID] = &c
	return nil
}

func (f *fakeEmployeesRepo) UpdateEmployee(_ context.Context, id string, patch repository.EmployeePatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
	}
	merge := func(dst *sql.NullString, v *string) {
		if v != nil {
			dst.String, dst.Valid = *v, true
		}
	}
	merge(&e.Name, patch.Name)
	merge(&e.NameEn, patch.NameEn)
	merge(&e.Role, patch.Role)
	merge(&e.Department, patch.Department)
	merge(&e.Administration, patch.Administration)
	merge(&e.RoomID, patch.RoomID)
	merge(&e.Email, patch.Email)
	merge(&e.PhoneOffice, patch.PhoneOffice)
	merge(&e.PhoneMobile, patch.PhoneMobile)
	if patch.Floor != nil {
		e.Floor.Int64, e.Floor.Valid = int64(*patch.Floor), true
	}
	e.IsActive = patch.IsActive
	e.IsAdmin = patch.IsAdmin
	e.AdminEmail = toNullString(patch.AdminEmail)
	e.AdminPassword = toNullString(patch.AdminPassword)
	return nil
}

func (f *fakeEmployeesRepo) DeleteEmployee(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeesRepo) FindActiveAdminByEmail(_ context.Context, email string) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.IsAdmin == 1 && e.IsActive == 1 && e.AdminEmail.Valid && e.AdminEmail.String == email {
			c := *e
			return &c, nil
		}
	}
	return nil, fmt.Errorf("admin %s: %w", email, repository.ErrNotFound)
}

func (f *fakeEmployeesRepo) HealthCounts(_ context.Context) (*domain.HealthCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.HealthCounts{OK: true, Employees: len(f.employees)}, nil
}

type fakeTaxonomyRepo struct {
	mu    sync.Mutex
	names map[string]map[string]bool
}

func newFakeTaxonomyRepo() *fakeTaxonomyRepo {
	return &fakeTaxonomyRepo{names: map[string]map[string]bool{
		"roles":       {},
		"departments": {},
	}}
}

func (f *fakeTaxonomyRepo) EnsureName(_ context.Context, table, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.names[table]
	if !ok {
		return false, fmt.Errorf("unknown name table %q: %w", table, repository.ErrInvalidArgument)
	}
	if set[name] {
		return false, nil
	}
	set[name] = true
	return true, nil
}

func (f *fakeTaxonomyRepo) ListNames(_ context.Context, table string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.names[table]
	if !ok {
		return nil, fmt.Errorf("unknown name table %q: %w", table, repository.ErrInvalidArgument)
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

type fakeImportRepo struct {
	employeeBatches [][]batch.EmployeeRecord
	nameBatches     map[string][]any
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{nameBatches: map[string][]any{}}
}

func (f *fakeImportRepo) ImportEmployees(_ context.Context, records []batch.EmployeeRecord) (*repository.ImportSummary, error) {
	f.employeeBatches = append(f.employeeBatches, records)
	return &repository.ImportSummary{Inserted: len(records)}, nil
}

func (f *fakeImportRepo) ImportNames(_ context.Context, table string, entries []any) (*repository.ImportSummary, error) {
	f.nameBatches[table] = append(f.nameBatches[table], entries...)
	return &repository.ImportSummary{Inserted: len(entries)}, nil
}
