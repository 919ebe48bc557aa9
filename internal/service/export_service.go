package service

import (
	"context"
	"fmt"
	"time"

	"officedir-data/internal/domain"
	"officedir-data/internal/export"
	"officedir-data/internal/repository"

	"go.uber.org/zap"
)

// ExportService serializes a table into a downloadable document.
type ExportService interface {
	// ExportJSON renders the table as an indented JSON array.
	ExportJSON(ctx context.Context, table string) (*ExportResult, error)
	// ExportExcel renders the table as an XLSX workbook.
	ExportExcel(ctx context.Context, table string) (*ExportResult, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type exportService struct {
	employees repository.EmployeesRepository
	taxonomy  repository.TaxonomyRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewExportService(employees repository.EmployeesRepository, taxonomy repository.TaxonomyRepository, logger *zap.Logger) ExportService {
	return &exportService{employees: employees, taxonomy: taxonomy, logger: logger, now: time.Now}
}

func (s *exportService) ExportJSON(ctx context.Context, table string) (*ExportResult, error) {
	records, err := s.records(ctx, table)
	if err != nil {
		return nil, err
	}
	data, err := export.JSON(records)
	if err != nil {
		return nil, fmt.Errorf("encode %s export: %w", table, err)
	}
	return &ExportResult{
		Filename:    export.Filename(table, "json", s.now()),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

func (s *exportService) ExportExcel(ctx context.Context, table string) (*ExportResult, error) {
	var data []byte
	switch table {
	case TableEmployees:
		employees, err := s.employeeRecords(ctx)
		if err != nil {
			return nil, err
		}
		data, err = export.EmployeesExcel(employees)
		if err != nil {
			return nil, fmt.Errorf("build employees workbook: %w", err)
		}
	case TableRoles, TableDepartments:
		names, err := s.taxonomy.ListNames(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		sheet := "Roles"
		if table == TableDepartments {
			sheet = "Departments"
		}
		var buildErr error
		data, buildErr = export.NamesExcel(sheet, names)
		if buildErr != nil {
			return nil, fmt.Errorf("build %s workbook: %w", table, buildErr)
		}
	default:
		return nil, fmt.Errorf("unsupported table %q, allowed: employees, roles, departments: %w",
			table, repository.ErrInvalidArgument)
	}
	return &ExportResult{
		Filename:    export.Filename(table, "xlsx", s.now()),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func (s *exportService) records(ctx context.Context, table string) (any, error) {
	switch table {
	case TableEmployees:
		return s.employeeRecords(ctx)
	case TableRoles, TableDepartments:
		names, err := s.taxonomy.ListNames(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		return export.NameRecords(names), nil
	default:
		return nil, fmt.Errorf("unsupported table %q, allowed: employees, roles, departments: %w",
			table, repository.ErrInvalidArgument)
	}
}

func (s *exportService) employeeRecords(ctx context.Context) ([]domain.EmployeeExport, error) {
	employees, err := s.employees.ListAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	// the export format carries the credential digest; inherited contract,
	// flagged here on every export
	s.logger.Warn("employee export includes admin credential digests",
		zap.Int("employees", len(employees)),
	)
	out := make([]domain.EmployeeExport, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Export())
	}
	return out, nil
}
