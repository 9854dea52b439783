package ports

import (
	"context"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
}
