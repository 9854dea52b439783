package service

import (
	"context"
	"fmt"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/service/ports"
)

type UserService struct {
	store ports.UserStore
}

func NewUserService(store ports.UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	user, err := s.store.AuthenticateUser(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("authenticate user: %w", err)
	}

	return user, nil
}

func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	if err := s.store.RegisterUser(ctx, username, password); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	return nil
}
