package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"officedir-data/internal/domain"
	"officedir-data/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFloorsRepo struct {
	mu     sync.Mutex
	floors map[int]*domain.Floor
}

func newFakeFloorsRepo() *fakeFloorsRepo {
	return &fakeFloorsRepo{floors: make(map[int]*domain.Floor)}
}

func (f *fakeFloorsRepo) ListFloors(_ context.Context) ([]*domain.Floor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Floor{}
	for _, fl := range f.floors {
		c := *fl
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeFloorsRepo) GetFloor(_ context.Context, number int) (*domain.Floor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl, ok := f.floors[number]
	if !ok {
		return nil, fmt.Errorf("floor %d: %w", number, repository.ErrNotFound)
	}
	c := *fl
	return &c, nil
}

func (f *fakeFloorsRepo) CreateFloor(_ context.Context, floor *domain.Floor, cloneFrom *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.floors[floor.FloorNumber]; ok {
		return fmt.Errorf("floor %d already exists: %w", floor.FloorNumber, repository.ErrConflict)
	}
	if cloneFrom != nil {
		src, ok := f.floors[*cloneFrom]
		if !ok {
			return fmt.Errorf("clone source floor %d: %w", *cloneFrom, repository.ErrNotFound)
		}
		if !floor.ImageURL.Valid {
			floor.ImageURL = src.ImageURL
		}
	}
	c := *floor
	f.floors[floor.FloorNumber] = &c
	return nil
}

func (f *fakeFloorsRepo) UpdateFloor(_ context.Context, number int, floorName, imageURL *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl, ok := f.floors[number]
	if !ok {
		return fmt.Errorf("floor %d: %w", number, repository.ErrNotFound)
	}
	if floorName != nil {
		fl.FloorName = sql.NullString{String: *floorName, Valid: true}
	}
	if imageURL != nil {
		fl.ImageURL = sql.NullString{String: *imageURL, Valid: true}
	}
	return nil
}

func (f *fakeFloorsRepo) DeleteFloor(_ context.Context, number int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.floors[number]; !ok {
		return fmt.Errorf("floor %d: %w", number, repository.ErrNotFound)
	}
	delete(f.floors, number)
	return nil
}

func TestFloorService_CreateRequiresNumberAndName(t *testing.T) {
	svc := NewFloorService(newFakeFloorsRepo(), nil, zap.NewNop())

	errNoNumber := svc.CreateFloor(context.Background(), CreateFloorRequest{FloorName: strp("Ground")})
	require.Error(t, errNoNumber)
	assert.True(t, errors.Is(errNoNumber, repository.ErrInvalidArgument))

	errNoName := svc.CreateFloor(context.Background(), CreateFloorRequest{FloorNumber: intp(1)})
	require.Error(t, errNoName)
	assert.True(t, errors.Is(errNoName, repository.ErrInvalidArgument))
}

func TestFloorService_CreateDuplicateConflicts(t *testing.T) {
	repo := newFakeFloorsRepo()
	svc := NewFloorService(repo, nil, zap.NewNop())

	require.NoError(t, svc.CreateFloor(context.Background(), CreateFloorRequest{
		FloorNumber: intp(1), FloorName: strp("Ground"),
	}))

	err := svc.CreateFloor(context.Background(), CreateFloorRequest{
		FloorNumber: intp(1), FloorName: strp("Again"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrConflict))
}

func TestFloorService_CloneCopiesImageWhenUnset(t *testing.T) {
	repo := newFakeFloorsRepo()
	svc := NewFloorService(repo, nil, zap.NewNop())

	require.NoError(t, svc.CreateFloor(context.Background(), CreateFloorRequest{
		FloorNumber: intp(1), FloorName: strp("Ground"), ImageURL: strp("https://img.example/1.png"),
	}))
	require.NoError(t, svc.CreateFloor(context.Background(), CreateFloorRequest{
		FloorNumber: intp(2), FloorName: strp("Second"), CloneFrom: intp(1),
	}))

	cloned, err := repo.GetFloor(context.Background(), 2)
	require.NoError(t, err)
	require.True(t, cloned.ImageURL.Valid)
	assert.Equal(t, "https://img.example/1.png", cloned.ImageURL.String)
}

func TestFloorService_CloneUnknownSource(t *testing.T) {
	svc := NewFloorService(newFakeFloorsRepo(), nil, zap.NewNop())

	err := svc.CreateFloor(context.Background(), CreateFloorRequest{
		FloorNumber: intp(2), FloorName: strp("Second"), CloneFrom: intp(9),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestFloorService_DeleteUnknownFloor(t *testing.T) {
	svc := NewFloorService(newFakeFloorsRepo(), nil, zap.NewNop())

	err := svc.DeleteFloor(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
