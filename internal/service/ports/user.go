package ports

import (
	"context"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
)

type UserStore interface {
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	RegisterUser(ctx context.Context, username, password string) error
}
