package httpapi

import (
	"fmt"
	"net/http"

	"officedir-data/internal/export"
	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type ExportHandler struct {
	exports service.ExportService
	logger  *zap.Logger
}

func NewExportHandler(exports service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exports: exports, logger: logger}
}

// ExportTable handles GET /api/export/{table}?format=json|xlsx. The response
// is a download; employee exports carry credential digests and are meant for
// backup and re-import, not for the public directory.
func (h *ExportHandler) ExportTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	table := pathTail(r, "/api/export/")
	if !export.ValidTable(table) {
		writeError(w, fmt.Errorf("unsupported table %q, allowed: employees, roles, departments: %w",
			table, repository.ErrInvalidArgument))
		return
	}

	var (
		result *service.ExportResult
		err    error
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		result, err = h.exports.ExportJSON(r.Context(), table)
	case "xlsx", "excel":
		result, err = h.exports.ExportExcel(r.Context(), table)
	default:
		writeError(w, fmt.Errorf("unsupported format %q, allowed: json, xlsx: %w", format, repository.ErrInvalidArgument))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		h.logger.Warn("export write aborted", zap.String("table", table), zap.Error(err))
	}
}
