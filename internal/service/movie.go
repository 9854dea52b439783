package service

import (
	"context"
	"fmt"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/service/ports"
)

type MovieService struct {
	store ports.MovieStore
}

func NewMovieService(store ports.MovieStore) *MovieService {
	return &MovieService{store: store}
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.store.GetMovies(ctx)
}

func (s *MovieService) Add(ctx context.Context, input domain.CreateMovieInput) (*domain.Movie, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Genre == "" {
		return nil, fmt.Errorf("%w: genre is required", domain.ErrValidation)
	}
	if input.Director == "" {
		return nil, fmt.Errorf("%w: director is required", domain.ErrValidation)
	}

	movie, err := s.store.AddMovie(ctx, input.Name, input.Genre, input.Director)
	if err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}

	return movie, nil
}

// Remove deletes a movie with its showtimes and their booked seats.
// Removing an id that is already gone is not an error.
func (s *MovieService) Remove(ctx context.Context, movieID int) error {
	if err := s.store.RemoveMovie(ctx, movieID); err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}
	return nil
}

func (s *MovieService) AddShowtime(ctx context.Context, movieID int, time string) error {
	if time == "" {
		return fmt.Errorf("%w: time is required", domain.ErrValidation)
	}

	if err := s.store.AddShowtime(ctx, movieID, time); err != nil {
		return fmt.Errorf("add showtime: %w", err)
	}

	return nil
}
