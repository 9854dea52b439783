package domain

// Database is the whole persisted document: everything the system knows,
// serialized as one JSON value under a single storage key. LastID is the
// global id counter; every new movie or showtime id is LastID+1 and is
// committed together with the entity.
type Database struct {
	LastID      int       `json:"lastId"`
	Users       []User    `json:"users"`
	Movies      []Movie   `json:"movies"`
	BookedSeats []Seat    `json:"bookedSeats"`
	Bookings    []Booking `json:"bookings"`
}
