package service

import (
	"context"
	"fmt"

	"officedir-data/internal/batch"
	"officedir-data/internal/repository"

	"go.uber.org/zap"
)

// Table selectors the import/export endpoints accept.
const (
	TableEmployees   = "employees"
	TableRoles       = "roles"
	TableDepartments = "departments"
)

// ImportService is the bulk reconciliation entry point.
type ImportService interface {
	// ImportBatch merges a record batch into the selected table. The whole
	// batch is one transaction.
	ImportBatch(ctx context.Context, table string, records []any) (*repository.ImportSummary, error)
	// ImportXML merges every recognized section of an XML document.
	ImportXML(ctx context.Context, document []byte) (*XMLImportResult, error)
}

type importService struct {
	importer repository.ImportRepository
	logger   *zap.Logger
}

func NewImportService(importer repository.ImportRepository, logger *zap.Logger) ImportService {
	return &importService{importer: importer, logger: logger}
}

// XMLImportResult tallies each section present in the document.
type XMLImportResult struct {
	Employees   *repository.ImportSummary `json:"employees,omitempty"`
	Roles       *repository.ImportSummary `json:"roles,omitempty"`
	Departments *repository.ImportSummary `json:"departments,omitempty"`
}

func (s *importService) ImportBatch(ctx context.Context, table string, records []any) (*repository.ImportSummary, error) {
	if records == nil {
		return nil, fmt.Errorf("records array is required: %w", repository.ErrInvalidArgument)
	}

	switch table {
	case TableRoles, TableDepartments:
		summary, err := s.importer.ImportNames(ctx, table, records)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", table, err)
		}
		s.logger.Info("names imported",
			zap.String("table", table),
			zap.Int("inserted", summary.Inserted),
		)
		return summary, nil
	case TableEmployees:
		normalized, err := normalizeEmployees(records)
		if err != nil {
			return nil, err
		}
		summary, err := s.importer.ImportEmployees(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("import employees: %w", err)
		}
		s.logger.Info("employees imported",
			zap.Int("inserted", summary.Inserted),
			zap.Int("updated", summary.Updated),
		)
		return summary, nil
	default:
		return nil, fmt.Errorf("unsupported table %q, allowed: employees, roles, departments: %w",
			table, repository.ErrInvalidArgument)
	}
}

func (s *importService) ImportXML(ctx context.Context, document []byte) (*XMLImportResult, error) {
	doc, err := batch.ParseXMLDocument(document)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, repository.ErrInvalidArgument)
	}

	result := &XMLImportResult{}
	if doc.Employees != nil {
		records := make([]any, 0, len(doc.Employees))
		for _, m := range doc.Employees {
			records = append(records, any(m))
		}
		result.Employees, err = s.ImportBatch(ctx, TableEmployees, records)
		if err != nil {
			return nil, err
		}
	}
	if doc.Roles != nil {
		result.Roles, err = s.ImportBatch(ctx, TableRoles, doc.Roles)
		if err != nil {
			return nil, err
		}
	}
	if doc.Departments != nil {
		result.Departments, err = s.ImportBatch(ctx, TableDepartments, doc.Departments)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// normalizeEmployees runs the coercion stage over raw entries. Entries
// without a usable identity and name are skipped without aborting the
// batch; a non-object entry rejects the whole batch before any write.
func normalizeEmployees(records []any) ([]batch.EmployeeRecord, error) {
	out := make([]batch.EmployeeRecord, 0, len(records))
	for i, raw := range records {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("employee record %d is not an object: %w", i, repository.ErrInvalidArgument)
		}
		rec, ok := batch.EmployeeRecordFrom(m)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
