package service

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/domain"
	"officedir-data/internal/repository"

	"go.uber.org/zap"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]domain.RoomView, error)
	CreateRoom(ctx context.Context, req CreateRoomRequest) (string, error)
	UpdateRoom(ctx context.Context, roomID string, req UpdateRoomRequest) (string, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	rooms  repository.RoomsRepository
	logger *zap.Logger
}

func NewRoomService(rooms repository.RoomsRepository, logger *zap.Logger) RoomService {
	return &roomService{rooms: rooms, logger: logger}
}

type CreateRoomRequest struct {
	RoomID     *string
	RoomName   *string
	RoomNumber *string
	Floor      *int
	X          *float64
	Y          *float64
}

type UpdateRoomRequest struct {
	RoomName   *string
	RoomNumber *string
	Floor      *int
	X          *float64
	Y          *float64
}

func (s *roomService) ListRooms(ctx context.Context) ([]domain.RoomView, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]domain.RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.View())
	}
	return out, nil
}

// CreateRoom inserts a room identified by its number. A caller-supplied
// room_id must agree with the number.
func (s *roomService) CreateRoom(ctx context.Context, req CreateRoomRequest) (string, error) {
	if req.RoomNumber == nil {
		return "", fmt.Errorf("room_number is required and must be unique: %w", repository.ErrInvalidArgument)
	}
	number := *req.RoomNumber
	if req.RoomID != nil && *req.RoomID != number {
		return "", fmt.Errorf("room_id must match room_number: %w", repository.ErrInvalidArgument)
	}

	room := &domain.Room{
		RoomID:     number,
		RoomNumber: sql.NullString{String: number, Valid: true},
	}
	if req.RoomName != nil {
		room.RoomName = sql.NullString{String: *req.RoomName, Valid: true}
	}
	if req.Floor != nil {
		room.Floor = sql.NullInt64{Int64: int64(*req.Floor), Valid: true}
	}
	if req.X != nil {
		room.X = sql.NullFloat64{Float64: *req.X, Valid: true}
	}
	if req.Y != nil {
		room.Y = sql.NullFloat64{Float64: *req.Y, Valid: true}
	}

	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return "", fmt.Errorf("create room %s: %w", number, err)
	}
	s.logger.Info("room created", zap.String("room_id", number))
	return number, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req UpdateRoomRequest) (string, error) {
	targetID, err := s.rooms.UpdateRoom(ctx, roomID, repository.RoomPatch{
		RoomNumber: req.RoomNumber,
		RoomName:   req.RoomName,
		Floor:      req.Floor,
		X:          req.X,
		Y:          req.Y,
	})
	if err != nil {
		return "", fmt.Errorf("update room %s: %w", roomID, err)
	}
	if targetID != roomID {
		s.logger.Info("room renumbered",
			zap.String("old_room_id", roomID),
			zap.String("new_room_id", targetID),
		)
	}
	return targetID, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.rooms.DeleteRoom(ctx, roomID); err != nil {
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}
	return nil
}
