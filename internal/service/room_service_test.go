package service

import (
	"context"
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

type fakeRoomsRepo struct {
	mu    sync.Mutex
	rooms map[string]*domain.Room
}

func newFakeRoomsRepo() *fakeRoomsRepo {
	return &fakeRoomsRepo{rooms: make(map[string]*domain.Room)}
}

func (f *fakeRoomsRepo) ListRooms(_ context.Context) ([]*domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*domain.Room{}
	for _, r := range f.rooms {
		c := *r
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeRoomsRepo) GetRoom(_ context.Context, roomID string) (*domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", roomID, repository.ErrNotFound)
	}
	c := *r
	return &c, nil
}

func (f *fakeRoomsRepo) CreateRoom(_ context.Context, room *domain.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[room.RoomID]; ok {
		return fmt.Errorf("room %s already exists: %w", room.RoomID, repository.ErrConflict)
	}
	c := *room
	f.rooms[room.RoomID] = &c
	return nil
}

func (f *fakeRoomsRepo) UpdateRoom(_ context.Context, roomID string, patch repository.RoomPatch) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return "", fmt.Errorf("room %s: %w", roomID, repository.ErrNotFound)
	}
	targetID := roomID
	if patch.RoomNumber != nil && *patch.RoomNumber != roomID {
		targetID = *patch.RoomNumber
		if _, taken := f.rooms[targetID]; taken {
			return "", fmt.Errorf("room %s already exists: %w", targetID, repository.ErrConflict)
		}
		delete(f.rooms, roomID)
		r.RoomID = targetID
		r.RoomNumber.String, r.RoomNumber.Valid = targetID, true
		f.rooms[targetID] = r
	}
	if patch.RoomName != nil {
		r.RoomName.String, r.RoomName.Valid = *patch.RoomName, true
	}
	if patch.Floor != nil {
		r.Floor.Int64, r.Floor.Valid = int64(*patch.Floor), true
	}
	return targetID, nil
}

func (f *fakeRoomsRepo) DeleteRoom(_ context.Context, roomID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rooms, roomID)
	return nil
}

func TestRoomService_CreateRequiresNumber(t *testing.T) {
	svc := NewRoomService(newFakeRoomsRepo(), zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{RoomName: strp("Lab")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}

func TestRoomService_CreateRejectsMismatchedID(t *testing.T) {
	svc := NewRoomService(newFakeRoomsRepo(), zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		RoomID:     strp("A-100"),
		RoomNumber: strp("B-200"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}

func TestRoomService_CreateDuplicateNumberConflicts(t *testing.T) {
	repo := newFakeRoomsRepo()
	svc := NewRoomService(repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{RoomNumber: strp("A-100")})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), CreateRoomRequest{RoomNumber: strp("A-100")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrConflict))
}

func TestRoomService_RenumberReturnsNewID(t *testing.T) {
	repo := newFakeRoomsRepo()
	svc := NewRoomService(repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{RoomNumber: strp("A-100")})
	require.NoError(t, err)

	targetID, err := svc.UpdateRoom(context.Background(), "A-100", UpdateRoomRequest{RoomNumber: strp("A-101")})
	require.NoError(t, err)
	assert.Equal(t, "A-101", targetID)

	_, err = repo.GetRoom(context.Background(), "A-100")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
