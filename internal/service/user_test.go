package service

import (
	"context"
	"testing"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestUserService_Authenticate_Success(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	store.EXPECT().AuthenticateUser(mock.Anything, "alice", "secret").
		Return(&domain.User{Username: "alice"}, nil)

	user, err := svc.Authenticate(context.Background(), "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestUserService_Authenticate_EmptyUsername(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	_, err := svc.Authenticate(context.Background(), "", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Authenticate_EmptyPassword(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	_, err := svc.Authenticate(context.Background(), "alice", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Authenticate_UserNotFound(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	store.EXPECT().AuthenticateUser(mock.Anything, "ghost", "secret").
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "ghost", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	store.EXPECT().AuthenticateUser(mock.Anything, "alice", "wrong").
		Return(nil, domain.ErrInvalidPassword)

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestUserService_Register_Success(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	store.EXPECT().RegisterUser(mock.Anything, "bob", "hunter2").Return(nil)

	err := svc.Register(context.Background(), "bob", "hunter2")

	require.NoError(t, err)
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	err := svc.Register(context.Background(), "", "hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.Register(context.Background(), "bob", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	store := mocks.NewMockUserStore(t)
	svc := NewUserService(store)

	store.EXPECT().RegisterUser(mock.Anything, "alice", "secret").
		Return(domain.ErrUsernameTaken)

	err := svc.Register(context.Background(), "alice", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
