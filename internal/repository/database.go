package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/storage"
	"github.com/wb-go/wbf/logger"
)

// showtimeSlots are the canonical screening times every movie gets on
// creation.
var showtimeSlots = []string{"09:00 AM", "12:00 PM", "03:00 PM", "06:00 PM", "09:00 PM"}

type Options struct {
	TotalSeats int
	SeatPrice  int
}

// Database is the data access layer: it owns the in-memory document and the
// injected persistence backend. Every mutating operation follows the same
// contract: validate, mutate the document, save the whole document, return.
// A failed save is logged and leaves memory ahead of storage (the dirty
// flag); it is never surfaced to the caller and never rolled back.
//
// One mutex serializes all operations, which gives the same single-writer
// read-modify-write semantics the document model assumes.
type Database struct {
	mu      sync.Mutex
	doc     *domain.Database
	backend storage.Backend
	opts    Options
	log     logger.Logger
	dirty   bool
}

// NewDatabase loads the previously saved document from the backend. An
// absent or unparseable payload is not an error: the store falls back to
// the seeded default catalog and persists it immediately.
func NewDatabase(ctx context.Context, backend storage.Backend, opts Options, log logger.Logger) *Database {
	d := &Database{
		backend: backend,
		opts:    opts,
		log:     log,
	}
	d.load(ctx)
	return d
}

func (d *Database) load(ctx context.Context) {
	data, err := d.backend.Load(ctx)
	if err == nil {
		var doc domain.Database
		jsonErr := json.Unmarshal(data, &doc)
		if jsonErr == nil {
			d.doc = &doc
			return
		}
		d.log.Error("failed to parse stored document, falling back to seed data",
			logger.String("error", jsonErr.Error()),
		)
	} else if !errors.Is(err, storage.ErrNotFound) {
		d.log.Error("failed to load document, falling back to seed data",
			logger.String("error", err.Error()),
		)
	}

	d.doc = d.seed()
	d.commit(ctx)
}

// seed builds the default catalog: five movies, each with the five
// canonical showtimes. Ids are allocated the same way as at runtime, so
// lastId ends up at the highest id used.
func (d *Database) seed() *domain.Database {
	doc := &domain.Database{
		Users:       []domain.User{},
		Movies:      []domain.Movie{},
		BookedSeats: []domain.Seat{},
		Bookings:    []domain.Booking{},
	}

	seedMovies := []domain.CreateMovieInput{
		{Name: "Inception", Genre: "Sci-Fi", Director: "Christopher Nolan"},
		{Name: "Titanic", Genre: "Romance", Director: "James Cameron"},
		{Name: "Avengers: Endgame", Genre: "Action", Director: "Russo Brothers"},
		{Name: "Joker", Genre: "Drama", Director: "Todd Phillips"},
		{Name: "Frozen II", Genre: "Animation", Director: "Chris Buck"},
	}

	for _, in := range seedMovies {
		doc.LastID++
		movie := domain.Movie{
			ID:       doc.LastID,
			Name:     in.Name,
			Genre:    in.Genre,
			Director: in.Director,
		}
		for _, slot := range showtimeSlots {
			doc.LastID++
			movie.Showtimes = append(movie.Showtimes, domain.Showtime{
				ID:         doc.LastID,
				Time:       slot,
				TotalSeats: d.opts.TotalSeats,
			})
		}
		doc.Movies = append(doc.Movies, movie)
	}

	return doc
}

// commit persists the whole document. Must be called with the mutex held
// (or before the store is shared). Save failures are non-fatal: the
// in-memory mutation stays applied and the dirty flag marks the divergence
// until the next successful save.
func (d *Database) commit(ctx context.Context) {
	data, err := json.Marshal(d.doc)
	if err != nil {
		d.log.Error("failed to serialize document",
			logger.String("error", err.Error()),
		)
		d.dirty = true
		return
	}

	if err = d.backend.Save(ctx, data); err != nil {
		d.log.Error("failed to save document, in-memory state is ahead of storage",
			logger.String("error", err.Error()),
		)
		d.dirty = true
		return
	}

	d.dirty = false
}

func (d *Database) nextID() int {
	d.doc.LastID++
	return d.doc.LastID
}

// Flush re-persists the document if an earlier save failed. Returns whether
// a pending save was written.
func (d *Database) Flush(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dirty {
		return false, nil
	}

	data, err := json.Marshal(d.doc)
	if err != nil {
		return false, err
	}
	if err = d.backend.Save(ctx, data); err != nil {
		return false, err
	}

	d.dirty = false
	return true, nil
}

// --- Users ---

// AuthenticateUser looks a user up by exact username and compares the
// stored plaintext password. Not-found and wrong-password are distinct
// errors. The returned user carries no password.
func (d *Database) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.doc.Users {
		if u.Username == username {
			if u.Password != password {
				return nil, domain.ErrInvalidPassword
			}
			return &domain.User{Username: u.Username}, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (d *Database) RegisterUser(ctx context.Context, username, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.doc.Users {
		if u.Username == username {
			return domain.ErrUsernameTaken
		}
	}

	d.doc.Users = append(d.doc.Users, domain.User{Username: username, Password: password})
	d.commit(ctx)

	return nil
}

// --- Movies ---

// GetMovies returns a deep copy of the catalog; mutating the result never
// touches the stored document.
func (d *Database) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	movies := make([]domain.Movie, 0, len(d.doc.Movies))
	for _, m := range d.doc.Movies {
		movies = append(movies, m.Clone())
	}

	return movies, nil
}

func (d *Database) AddMovie(ctx context.Context, name, genre, director string) (*domain.Movie, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	movie := domain.Movie{
		ID:       d.nextID(),
		Name:     name,
		Genre:    genre,
		Director: director,
	}
	for _, slot := range showtimeSlots {
		movie.Showtimes = append(movie.Showtimes, domain.Showtime{
			ID:         d.nextID(),
			Time:       slot,
			TotalSeats: d.opts.TotalSeats,
		})
	}

	d.doc.Movies = append(d.doc.Movies, movie)
	d.commit(ctx)

	clone := movie.Clone()
	return &clone, nil
}

// RemoveMovie deletes the movie and every booked-seat record belonging to
// any of its showtimes, so no orphan seat records survive. Booking receipts
// are historical snapshots and stay untouched. Removing an unknown id is a
// no-op.
func (d *Database) RemoveMovie(ctx context.Context, movieID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var movie *domain.Movie
	for i := range d.doc.Movies {
		if d.doc.Movies[i].ID == movieID {
			movie = &d.doc.Movies[i]
			break
		}
	}
	if movie == nil {
		return nil
	}

	showtimeIDs := make(map[int]bool, len(movie.Showtimes))
	for _, st := range movie.Showtimes {
		showtimeIDs[st.ID] = true
	}

	seats := d.doc.BookedSeats[:0]
	for _, s := range d.doc.BookedSeats {
		if !showtimeIDs[s.ShowtimeID] {
			seats = append(seats, s)
		}
	}
	d.doc.BookedSeats = seats

	movies := d.doc.Movies[:0]
	for _, m := range d.doc.Movies {
		if m.ID != movieID {
			movies = append(movies, m)
		}
	}
	d.doc.Movies = movies

	d.commit(ctx)
	return nil
}

// AddShowtime appends one showtime with fixed capacity to the movie.
// Unknown movie id is a no-op.
func (d *Database) AddShowtime(ctx context.Context, movieID int, timeLabel string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.doc.Movies {
		if d.doc.Movies[i].ID == movieID {
			d.doc.Movies[i].Showtimes = append(d.doc.Movies[i].Showtimes, domain.Showtime{
				ID:         d.nextID(),
				Time:       timeLabel,
				TotalSeats: d.opts.TotalSeats,
			})
			d.commit(ctx)
			return nil
		}
	}

	return nil
}

// --- Seats & bookings ---

// GetSeatStatus reports, for each seat 1..totalSeats, whether it is booked
// for the showtime. Seat records outside the range are ignored.
func (d *Database) GetSeatStatus(ctx context.Context, showtimeID int) ([]bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := make([]bool, d.opts.TotalSeats)
	for _, s := range d.doc.BookedSeats {
		if s.ShowtimeID == showtimeID && s.SeatNumber >= 1 && s.SeatNumber <= d.opts.TotalSeats {
			status[s.SeatNumber-1] = true
		}
	}

	return status, nil
}

func (d *Database) GetAvailableSeatsCount(ctx context.Context, showtimeID int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	booked := 0
	for _, s := range d.doc.BookedSeats {
		if s.ShowtimeID == showtimeID {
			booked++
		}
	}

	return d.opts.TotalSeats - booked, nil
}

// BookSeats books the requested seats for the showtime and appends the
// Booking receipt, committed as one document write. Availability is
// re-checked here: a seat grid read by the caller may be stale by the time
// the booking arrives, so any requested seat that is already taken rejects
// the whole request.
func (d *Database) BookSeats(ctx context.Context, username string, movieID, showtimeID int, seatNumbers []int) (*domain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var movie *domain.Movie
	for i := range d.doc.Movies {
		if d.doc.Movies[i].ID == movieID {
			movie = &d.doc.Movies[i]
			break
		}
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}

	var showtime *domain.Showtime
	for i := range movie.Showtimes {
		if movie.Showtimes[i].ID == showtimeID {
			showtime = &movie.Showtimes[i]
			break
		}
	}
	if showtime == nil {
		return nil, domain.ErrShowtimeNotFound
	}

	taken := make(map[int]bool)
	for _, s := range d.doc.BookedSeats {
		if s.ShowtimeID == showtimeID {
			taken[s.SeatNumber] = true
		}
	}

	for _, n := range seatNumbers {
		if n < 1 || n > showtime.TotalSeats {
			return nil, domain.ErrSeatOutOfRange
		}
		if taken[n] {
			return nil, domain.ErrSeatTaken
		}
		taken[n] = true
	}

	for _, n := range seatNumbers {
		d.doc.BookedSeats = append(d.doc.BookedSeats, domain.Seat{
			ShowtimeID: showtimeID,
			SeatNumber: n,
		})
	}

	seats := make([]int, len(seatNumbers))
	copy(seats, seatNumbers)

	booking := domain.Booking{
		ID:         "booking-" + strconv.Itoa(d.nextID()),
		Username:   username,
		MovieName:  movie.Name,
		Showtime:   showtime.Time,
		Seats:      seats,
		TotalPrice: len(seatNumbers) * d.opts.SeatPrice,
	}
	d.doc.Bookings = append(d.doc.Bookings, booking)

	d.commit(ctx)

	clone := booking.Clone()
	return &clone, nil
}

func (d *Database) GetUserBookings(ctx context.Context, username string) ([]domain.Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var res []domain.Booking
	for _, b := range d.doc.Bookings {
		if b.Username == username {
			res = append(res, b.Clone())
		}
	}

	return res, nil
}
