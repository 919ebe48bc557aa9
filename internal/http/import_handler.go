package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type ImportHandler struct {
	imports service.ImportService
	logger  *zap.Logger
}

func NewImportHandler(imports service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{imports: imports, logger: logger}
}

// ImportTable handles POST /api/import/{table}. The body is either a bare
// JSON array or {"records": [...]}.
func (h *ImportHandler) ImportTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	table := pathTail(r, "/api/import/")
	if table == "" {
		writeError(w, fmt.Errorf("import table is required: %w", repository.ErrInvalidArgument))
		return
	}

	records, err := decodeRecords(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", repository.ErrInvalidArgument))
		return
	}

	summary, err := h.imports.ImportBatch(r.Context(), table, records)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ImportXML handles POST /api/import/xml with a raw XML document body.
func (h *ImportHandler) ImportXML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	document, err := readBody(r)
	if err != nil {
		writeError(w, fmt.Errorf("read body: %w", repository.ErrInvalidArgument))
		return
	}

	result, err := h.imports.ImportXML(r.Context(), document)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func decodeRecords(r *http.Request) ([]any, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	var records []any
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Records []any `json:"records"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Records, nil
}
