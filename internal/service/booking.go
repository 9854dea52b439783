package service

import (
	"context"
	"fmt"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	store    ports.BookingStore
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	store ports.BookingStore,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) SeatStatus(ctx context.Context, showtimeID int) ([]bool, error) {
	return s.store.GetSeatStatus(ctx, showtimeID)
}

func (s *BookingService) AvailableSeats(ctx context.Context, showtimeID int) (int, error) {
	return s.store.GetAvailableSeatsCount(ctx, showtimeID)
}

// Book completes the mock payment and books the seats. Payment is a
// formality: any non-empty card text passes.
func (s *BookingService) Book(ctx context.Context, input domain.BookSeatsInput) (*domain.Booking, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(input.Seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat must be selected", domain.ErrValidation)
	}
	if input.CardDetails == "" {
		return nil, fmt.Errorf("%w: card details are required", domain.ErrValidation)
	}

	booking, err := s.store.BookSeats(ctx, input.Username, input.MovieID, input.ShowtimeID, input.Seats)
	if err != nil {
		return nil, fmt.Errorf("book seats: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("username", booking.Username),
		logger.String("movie", booking.MovieName),
		logger.Int("seats", len(booking.Seats)),
		logger.Int("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, username string) ([]domain.Booking, error) {
	return s.store.GetUserBookings(ctx, username)
}
