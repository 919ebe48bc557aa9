package httpapi

import (
	"net/http"

	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type DirectoryHandler struct {
	directory service.DirectoryService
	logger    *zap.Logger
}

func NewDirectoryHandler(directory service.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, logger: logger}
}

func (h *DirectoryHandler) Taxonomy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	taxonomy, err := h.directory.Taxonomy(r.Context())
	if err != nil {
		h.logger.Error("taxonomy lookup failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taxonomy)
}

func (h *DirectoryHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	counts, err := h.directory.HealthCounts(r.Context())
	if err != nil {
		h.logger.Error("health counts failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
