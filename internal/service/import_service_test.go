package service

import (
	"context"
	"errors"
	"testing"

	"officedir-data/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImportService_NilRecordsRejected(t *testing.T) {
	svc := NewImportService(newFakeImportRepo(), zap.NewNop())

	_, err := svc.ImportBatch(context.Background(), TableEmployees, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}

func TestImportService_UnsupportedTableRejected(t *testing.T) {
	svc := NewImportService(newFakeImportRepo(), zap.NewNop())

	_, err := svc.ImportBatch(context.Background(), "floors", []any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}

func TestImportService_EmployeeCoercionSkipsBadEntries(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo, zap.NewNop())

	records := []any{
		map[string]any{"id": "2001", "name": "Dana Voss", "floor": "3"},
		map[string]any{"name": "no identity"},
		map[string]any{"employeeId": float64(2002), "Name": "Iris Kahn"},
	}
	_, err := svc.ImportBatch(context.Background(), TableEmployees, records)
	require.NoError(t, err)

	require.Len(t, repo.employeeBatches, 1)
	batch := repo.employeeBatches[0]
	require.Len(t, batch, 2)
	assert.Equal(t, "2001", batch[0].ID)
	require.NotNil(t, batch[0].Floor)
	assert.Equal(t, 3, *batch[0].Floor)
	// camelCase alias and numeric id both normalize
	assert.Equal(t, "2002", batch[1].ID)
	assert.Equal(t, "Iris Kahn", batch[1].Name)
}

func TestImportService_NonObjectEmployeeRejectsBatch(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo, zap.NewNop())

	_, err := svc.ImportBatch(context.Background(), TableEmployees, []any{
		map[string]any{"id": "2001", "name": "Dana Voss"},
		"not an object",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
	// rejected before any write
	assert.Empty(t, repo.employeeBatches)
}

func TestImportService_NamesRouteToTable(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo, zap.NewNop())

	summary, err := svc.ImportBatch(context.Background(), TableRoles, []any{"Engineer", "Janitor"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Inserted)
	assert.Len(t, repo.nameBatches[TableRoles], 2)
}

func TestImportService_XMLDispatchesSections(t *testing.T) {
	repo := newFakeImportRepo()
	svc := NewImportService(repo, zap.NewNop())

	doc := []byte(`<?xml version="1.0"?>
<root>
  <employees>
    <employee><id>3001</id><name>Omar Reyes</name><is_admin>yes</is_admin></employee>
  </employees>
  <roles>
    <role><name>Engineer</name></role>
  </roles>
</root>`)

	result, err := svc.ImportXML(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, result.Employees)
	require.NotNil(t, result.Roles)
	assert.Nil(t, result.Departments)

	require.Len(t, repo.employeeBatches, 1)
	require.Len(t, repo.employeeBatches[0], 1)
	rec := repo.employeeBatches[0][0]
	assert.Equal(t, "3001", rec.ID)
	require.NotNil(t, rec.IsAdmin)
	assert.True(t, *rec.IsAdmin)
}

func TestImportService_XMLMalformedRejected(t *testing.T) {
	svc := NewImportService(newFakeImportRepo(), zap.NewNop())

	_, err := svc.ImportXML(context.Background(), []byte("<root><employees>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}
