package domain

// Seat marks a single (showtime, seat number) pair as taken.
type Seat struct {
	ShowtimeID int `json:"showtimeId"`
	SeatNumber int `json:"seatNumber"`
}

// Booking is an immutable receipt of a completed purchase. Movie name and
// showtime label are denormalized snapshots and never updated afterwards.
type Booking struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	MovieName  string `json:"movieName"`
	Showtime   string `json:"showtime"`
	Seats      []int  `json:"seats"`
	TotalPrice int    `json:"totalPrice"`
}

func (b Booking) Clone() Booking {
	c := b
	c.Seats = make([]int, len(b.Seats))
	copy(c.Seats, b.Seats)
	return c
}

type BookSeatsInput struct {
	Username    string
	MovieID     int
	ShowtimeID  int
	Seats       []int
	CardDetails string
}
