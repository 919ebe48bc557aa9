package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"officedir-data/internal/batch"
	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type FloorsHandler struct {
	floors service.FloorService
	logger *zap.Logger
}

func NewFloorsHandler(floors service.FloorService, logger *zap.Logger) *FloorsHandler {
	return &FloorsHandler{floors: floors, logger: logger}
}

func (h *FloorsHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		views, err := h.floors.ListFloors(r.Context())
		if err != nil {
			h.logger.Error("list floors failed", zap.Error(err))
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var body map[string]any
		if err := readBodyJSON(r, &body); err != nil {
			writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
			return
		}
		req := service.CreateFloorRequest{
			FloorNumber: batch.FloorNumber(body["floor_number"]),
			FloorName:   batch.String(body["floor_name"]),
			ImageURL:    batch.String(body["image_url"]),
			CloneFrom:   batch.FloorNumber(body["clone_from"]),
		}
		if err := h.floors.CreateFloor(r.Context(), req); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *FloorsHandler) Item(w http.ResponseWriter, r *http.Request) {
	tail := pathTail(r, "/api/floors/")
	number, err := strconv.Atoi(tail)
	if err != nil {
		writeError(w, fmt.Errorf("invalid floor number %q: %w", tail, repository.ErrInvalidArgument))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body map[string]any
		if err := readBodyJSON(r, &body); err != nil {
			writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
			return
		}
		req := service.UpdateFloorRequest{
			FloorName: batch.String(body["floor_name"]),
			ImageURL:  batch.String(body["image_url"]),
		}
		if err := h.floors.UpdateFloor(r.Context(), number, req); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case http.MethodDelete:
		if err := h.floors.DeleteFloor(r.Context(), number); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
