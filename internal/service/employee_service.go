package service

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/batch"
	"officedir-data/internal/domain"
	"officedir-data/internal/repository"

	"go.uber.org/zap"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req EmployeeInput) (string, error)
	UpdateEmployee(ctx context.Context, id string, req EmployeeInput) error
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeService struct {
	employees repository.EmployeesRepository
	taxonomy  repository.TaxonomyRepository
	logger    *zap.Logger
}

func NewEmployeeService(employees repository.EmployeesRepository, taxonomy repository.TaxonomyRepository, logger *zap.Logger) EmployeeService {
	return &employeeService{employees: employees, taxonomy: taxonomy, logger: logger}
}

// EmployeeInput is the typed form of a create/update payload. nil means the
// caller did not supply the field.
type EmployeeInput struct {
	ID             *string
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
	IsActive       *bool
	IsAdmin        *bool
	AdminEmail     *string
	AdminPassword  *string
}

func (in EmployeeInput) record() batch.EmployeeRecord {
	return batch.EmployeeRecord{
		IsActive:      in.IsActive,
		IsAdmin:       in.IsAdmin,
		AdminEmail:    in.AdminEmail,
		AdminPassword: in.AdminPassword,
	}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req EmployeeInput) (string, error) {
	if req.ID == nil {
		return "", fmt.Errorf("employee id is required: %w", repository.ErrInvalidArgument)
	}
	id := *req.ID

	state := batch.ResolveAdminState(req.record(), nil)

	e := &domain.Employee{
		ID:             id,
		Name:           toNullString(req.Name),
		NameEn:         toNullString(req.NameEn),
		Role:           toNullString(req.Role),
		Department:     toNullString(req.Department),
		Administration: toNullString(req.Administration),
		RoomID:         toNullString(req.RoomID),
		Floor:          toNullInt(req.Floor),
		Email:          toNullString(req.Email),
		PhoneOffice:    toNullString(req.PhoneOffice),
		PhoneMobile:    toNullString(req.PhoneMobile),
		IsActive:       state.IsActive,
		IsAdmin:        state.IsAdmin,
		AdminEmail:     toNullString(state.AdminEmail),
		AdminPassword:  toNullString(state.AdminPassword),
	}
	if err := s.employees.CreateEmployee(ctx, e); err != nil {
		return "", fmt.Errorf("create employee %s: %w", id, err)
	}

	s.registerTaxonomy(ctx, req.Role, req.Department)
	s.logger.Info("employee created", zap.String("id", id))
	return id, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req EmployeeInput) error {
	prev, err := s.employees.GetEmployee(ctx, id)
	if err != nil {
		return fmt.Errorf("update employee %s: %w", id, err)
	}

	state := batch.ResolveAdminState(req.record(), prevEmployee(prev))

	patch := repository.EmployeePatch{
		Name:           req.Name,
		NameEn:         req.NameEn,
		Role:           req.Role,
		Department:     req.Department,
		Administration: req.Administration,
		RoomID:         req.RoomID,
		Floor:          req.Floor,
		Email:          req.Email,
		PhoneOffice:    req.PhoneOffice,
		PhoneMobile:    req.PhoneMobile,
		IsActive:       state.IsActive,
		IsAdmin:        state.IsAdmin,
		AdminEmail:     state.AdminEmail,
		AdminPassword:  state.AdminPassword,
	}
	if err := s.employees.UpdateEmployee(ctx, id, patch); err != nil {
		return fmt.Errorf("update employee %s: %w", id, err)
	}

	s.registerTaxonomy(ctx, req.Role, req.Department)
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employees.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}
	return nil
}

// registerTaxonomy keeps the role/department sets in step with whatever an
// employee write references. Failures are logged, not fatal.
func (s *employeeService) registerTaxonomy(ctx context.Context, role, department *string) {
	if role != nil {
		if _, err := s.taxonomy.EnsureName(ctx, "roles", *role); err != nil {
			s.logger.Warn("failed to register role", zap.String("name", *role), zap.Error(err))
		}
	}
	if department != nil {
		if _, err := s.taxonomy.EnsureName(ctx, "departments", *department); err != nil {
			s.logger.Warn("failed to register department", zap.String("name", *department), zap.Error(err))
		}
	}
}

func prevEmployee(e *domain.Employee) *batch.PrevEmployee {
	prev := &batch.PrevEmployee{IsActive: e.IsActive, IsAdmin: e.IsAdmin}
	if e.AdminEmail.Valid {
		s := e.AdminEmail.String
		prev.AdminEmail = &s
	}
	if e.AdminPassword.Valid {
		s := e.AdminPassword.String
		prev.AdminPassword = &s
	}
	return prev
}

func toNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
