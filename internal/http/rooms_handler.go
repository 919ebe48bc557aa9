package httpapi

import (
	"fmt"
	"net/http"

	"officedir-data/internal/batch"
	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type RoomsHandler struct {
	rooms  service.RoomService
	logger *zap.Logger
}

func NewRoomsHandler(rooms service.RoomService, logger *zap.Logger) *RoomsHandler {
	return &RoomsHandler{rooms: rooms, logger: logger}
}

func (h *RoomsHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		views, err := h.rooms.ListRooms(r.Context())
		if err != nil {
			h.logger.Error("list rooms failed", zap.Error(err))
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
		req := service.CreateRoomRequest{
			RoomID:     batch.String(body["room_id"]),
			RoomName:   batch.String(body["room_name"]),
			RoomNumber: batch.String(body["room_number"]),
			Floor:      batch.FloorNumber(body["floor"]),
			X:          batch.Coordinate(body["x"]),
			Y:          batch.Coordinate(body["y"]),
		}
		roomID, err := h.rooms.CreateRoom(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "room_id": roomID})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *RoomsHandler) Item(w http.ResponseWriter, r *http.Request) {
	roomID := pathTail(r, "/api/rooms/")
	if roomID == "" {
		writeError(w, fmt.Errorf("room id is required: %w", repository.ErrInvalidArgument))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body map[string]any
		if err := readBodyJSON(r, &body); err != nil {
			writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
			return
		}
		req := service.UpdateRoomRequest{
			RoomName:   batch.String(body["room_name"]),
			RoomNumber: batch.String(body["room_number"]),
			Floor:      batch.FloorNumber(body["floor"]),
			X:          batch.Coordinate(body["x"]),
			Y:          batch.Coordinate(body["y"]),
		}
		targetID, err := h.rooms.UpdateRoom(r.Context(), roomID, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "room_id": targetID})
	case http.MethodDelete:
		if err := h.rooms.DeleteRoom(r.Context(), roomID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
