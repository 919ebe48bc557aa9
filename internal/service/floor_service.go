package service

import (
	"context"
	"database/sql"
	"fmt"

	"officedir-data/internal/domain"
	"officedir-data/internal/planimage"
	"officedir-data/internal/repository"

	"go.uber.org/zap"
)

// FloorService owns floor CRUD, including the delete cascade and the
// create-with-clone path.
type FloorService interface {
	ListFloors(ctx context.Context) ([]domain.FloorView, error)
	CreateFloor(ctx context.Context, req CreateFloorRequest) error
	UpdateFloor(ctx context.Context, number int, req UpdateFloorRequest) error
	DeleteFloor(ctx context.Context, number int) error
}

type floorService struct {
	floors repository.FloorsRepository
	prober *planimage.Prober // nil disables probing
	logger *zap.Logger
}

func NewFloorService(floors repository.FloorsRepository, prober *planimage.Prober, logger *zap.Logger) FloorService {
	return &floorService{floors: floors, prober: prober, logger: logger}
}

type CreateFloorRequest struct {
	FloorNumber *int
	FloorName   *string
	ImageURL    *string
	CloneFrom   *int
}

type UpdateFloorRequest struct {
	FloorName *string
	ImageURL  *string
}

func (s *floorService) ListFloors(ctx context.Context) ([]domain.FloorView, error) {
	floors, err := s.floors.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	out := make([]domain.FloorView, 0, len(floors))
	for _, f := range floors {
		out = append(out, f.View())
	}
	return out, nil
}

func (s *floorService) CreateFloor(ctx context.Context, req CreateFloorRequest) error {
	if req.FloorNumber == nil {
		return fmt.Errorf("floor_number is required: %w", repository.ErrInvalidArgument)
	}
	if req.FloorName == nil {
		return fmt.Errorf("floor_name is required: %w", repository.ErrInvalidArgument)
	}

	floor := &domain.Floor{FloorNumber: *req.FloorNumber}
	floor.FloorName = sql.NullString{String: *req.FloorName, Valid: true}
	if req.ImageURL != nil {
		floor.ImageURL = sql.NullString{String: *req.ImageURL, Valid: true}
		s.probeImage(ctx, *req.ImageURL)
	}

	if err := s.floors.CreateFloor(ctx, floor, req.CloneFrom); err != nil {
		return fmt.Errorf("create floor %d: %w", *req.FloorNumber, err)
	}
	s.logger.Info("floor created",
		zap.Int("floor_number", *req.FloorNumber),
		zap.Bool("cloned", req.CloneFrom != nil),
	)
	return nil
}

func (s *floorService) UpdateFloor(ctx context.Context, number int, req UpdateFloorRequest) error {
	if req.ImageURL != nil {
		s.probeImage(ctx, *req.ImageURL)
	}
	if err := s.floors.UpdateFloor(ctx, number, req.FloorName, req.ImageURL); err != nil {
		return fmt.Errorf("update floor %d: %w", number, err)
	}
	return nil
}

func (s *floorService) DeleteFloor(ctx context.Context, number int) error {
	if err := s.floors.DeleteFloor(ctx, number); err != nil {
		return fmt.Errorf("delete floor %d: %w", number, err)
	}
	s.logger.Info("floor deleted", zap.Int("floor_number", number))
	return nil
}

// probeImage is advisory: a bad image URL is logged, the write proceeds.
func (s *floorService) probeImage(ctx context.Context, imageURL string) {
	if s.prober == nil {
		return
	}
	if err := s.prober.Probe(ctx, imageURL); err != nil {
		s.logger.Warn("floor-plan image unreachable",
			zap.String("image_url", imageURL),
			zap.Error(err),
		)
	}
}
