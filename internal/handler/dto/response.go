package dto

import (
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
)

type UserResponse struct {
	Username string `json:"username"`
}

type ShowtimeResponse struct {
	ID         int    `json:"id"`
	Time       string `json:"time"`
	TotalSeats int    `json:"totalSeats"`
}

type MovieResponse struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Genre     string             `json:"genre"`
	Director  string             `json:"director"`
	Showtimes []ShowtimeResponse `json:"showtimes"`
}

type SeatStatusResponse struct {
	ShowtimeID int    `json:"showtimeId"`
	Seats      []bool `json:"seats"`
}

type AvailabilityResponse struct {
	ShowtimeID     int `json:"showtimeId"`
	AvailableSeats int `json:"availableSeats"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	MovieName  string `json:"movieName"`
	Showtime   string `json:"showtime"`
	Seats      []int  `json:"seats"`
	TotalPrice int    `json:"totalPrice"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username}
}

func ToShowtimeResponse(st domain.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:         st.ID,
		Time:       st.Time,
		TotalSeats: st.TotalSeats,
	}
}

func ToMovieResponse(m *domain.Movie) MovieResponse {
	showtimes := make([]ShowtimeResponse, 0, len(m.Showtimes))
	for _, st := range m.Showtimes {
		showtimes = append(showtimes, ToShowtimeResponse(st))
	}

	return MovieResponse{
		ID:        m.ID,
		Name:      m.Name,
		Genre:     m.Genre,
		Director:  m.Director,
		Showtimes: showtimes,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Username:   b.Username,
		MovieName:  b.MovieName,
		Showtime:   b.Showtime,
		Seats:      b.Seats,
		TotalPrice: b.TotalPrice,
	}
}
