package ports

import (
	"context"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
)

type BookingStore interface {
	GetSeatStatus(ctx context.Context, showtimeID int) ([]bool, error)
	GetAvailableSeatsCount(ctx context.Context, showtimeID int) (int, error)
	BookSeats(ctx context.Context, username string, movieID, showtimeID int, seatNumbers []int) (*domain.Booking, error)
	GetUserBookings(ctx context.Context, username string) ([]domain.Booking, error)
}
