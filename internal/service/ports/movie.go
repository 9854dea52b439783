package ports

import (
	"context"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
)

type MovieStore interface {
	GetMovies(ctx context.Context) ([]domain.Movie, error)
	AddMovie(ctx context.Context, name, genre, director string) (*domain.Movie, error)
	RemoveMovie(ctx context.Context, movieID int) error
	AddShowtime(ctx context.Context, movieID int, time string) error
}
