package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"officedir-data/internal/credentials"
	"officedir-data/internal/domain"
	"officedir-data/internal/repository"
	"officedir-data/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeEmployeesRepo) {
	t.Helper()
	repo := newFakeEmployeesRepo()
	svc := NewAuthService(repo, store.NewMemoryKV(), time.Hour, zap.NewNop())
	return svc, repo
}

func seedAdmin(t *testing.T, repo *fakeEmployeesRepo, id, email, password string) {
	t.Helper()
	err := repo.CreateEmployee(context.Background(), &domain.Employee{
		ID:            id,
		Name:          sql.NullString{String: "Admin " + id, Valid: true},
		IsActive:      1,
		IsAdmin:       1,
		AdminEmail:    sql.NullString{String: email, Valid: true},
		AdminPassword: sql.NullString{String: credentials.Hash(password), Valid: true},
	})
	require.NoError(t, err)
}

func TestAuthService_LoginAndSessionRoundtrip(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedAdmin(t, repo, "1001", "admin@example.com", "s3cret")

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "1001", resp.ID)
	assert.Equal(t, "admin@example.com", resp.Email)

	session, err := svc.Session(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1001", session.ID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedAdmin(t, repo, "1001", "admin@example.com", "s3cret")

	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnauthorized))
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnauthorized))
}

func TestAuthService_LoginInactiveAdminRejected(t *testing.T) {
	svc, repo := newAuthFixture(t)
	err := repo.CreateEmployee(context.Background(), &domain.Employee{
		ID:            "1002",
		IsActive:      0,
		IsAdmin:       1,
		AdminEmail:    sql.NullString{String: "idle@example.com", Valid: true},
		AdminPassword: sql.NullString{String: credentials.Hash("s3cret"), Valid: true},
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "idle@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnauthorized))
}

func TestAuthService_LoginMissingFields(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "", Password: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidArgument))
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedAdmin(t, repo, "1001", "admin@example.com", "s3cret")

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.Session(context.Background(), resp.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnauthorized))
}

func TestAuthService_SessionMissingToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Session(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnauthorized))
}
