package domain

// Showtime is one scheduled screening with a fixed seat capacity.
// Immutable once created; removed only together with its movie.
type Showtime struct {
	ID         int    `json:"id"`
	Time       string `json:"time"`
	TotalSeats int    `json:"totalSeats"`
}

type Movie struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Genre     string     `json:"genre"`
	Director  string     `json:"director"`
	Showtimes []Showtime `json:"showtimes"`
}

// Clone returns a deep copy, so callers can never reach the stored showtime
// slice through a returned movie.
func (m Movie) Clone() Movie {
	c := m
	c.Showtimes = make([]Showtime, len(m.Showtimes))
	copy(c.Showtimes, m.Showtimes)
	return c
}

type CreateMovieInput struct {
	Name     string
	Genre    string
	Director string
}
