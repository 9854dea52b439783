package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/handler/dto"
	hmocks "github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockUserSvc, *hmocks.MockMovieSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	userSvc := hmocks.NewMockUserSvc(t)
	movieSvc := hmocks.NewMockMovieSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(userSvc, movieSvc, bookingSvc, AdminCredentials{
		Username: "admin",
		Password: "admin123",
	})

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/admin/login", h.AdminLogin)
		api.GET("/movies", h.ListMovies)
		api.POST("/movies", h.AddMovie)
		api.DELETE("/movies/:id", h.RemoveMovie)
		api.POST("/movies/:id/showtimes", h.AddShowtime)
		api.GET("/showtimes/:id/seats", h.SeatStatus)
		api.GET("/showtimes/:id/availability", h.Availability)
		api.POST("/bookings", h.BookSeats)
		api.GET("/users/:username/bookings", h.GetUserBookings)
	}

	return userSvc, movieSvc, bookingSvc, r
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, "alice", "secret").Return(nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"username":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, "alice", "secret").Return(domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Authenticate(mock.Anything, "alice", "secret").
		Return(&domain.User{Username: "alice"}, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_Login_UserNotFound(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Authenticate(mock.Anything, "ghost", "secret").
		Return(nil, domain.ErrUserNotFound)

	body, _ := json.Marshal(dto.LoginRequest{Username: "ghost", Password: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	userSvc, _, _, r := setupRouter(t)

	userSvc.EXPECT().Authenticate(mock.Anything, "alice", "wrong").
		Return(nil, domain.ErrInvalidPassword)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_AdminLogin_Success(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Username: "admin", Password: "admin123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AdminLogin_WrongCredentials(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Username: "admin", Password: "nope"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Movies ---

func TestHandler_ListMovies_Success(t *testing.T) {
	_, movieSvc, _, r := setupRouter(t)

	movies := []domain.Movie{
		{ID: 1, Name: "Inception", Genre: "Sci-Fi", Director: "Christopher Nolan",
			Showtimes: []domain.Showtime{{ID: 2, Time: "09:00 AM", TotalSeats: 40}}},
		{ID: 7, Name: "Titanic", Genre: "Romance", Director: "James Cameron"},
	}
	movieSvc.EXPECT().List(mock.Anything).Return(movies, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Inception", resp[0].Name)
	require.Len(t, resp[0].Showtimes, 1)
	assert.Equal(t, 40, resp[0].Showtimes[0].TotalSeats)
}

func TestHandler_AddMovie_Success(t *testing.T) {
	_, movieSvc, _, r := setupRouter(t)

	added := &domain.Movie{ID: 31, Name: "Dune", Genre: "Sci-Fi", Director: "Denis Villeneuve"}
	movieSvc.EXPECT().Add(mock.Anything, mock.Anything).Return(added, nil)

	body, _ := json.Marshal(dto.AddMovieRequest{Name: "Dune", Genre: "Sci-Fi", Director: "Denis Villeneuve"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 31, resp.ID)
}

func TestHandler_AddMovie_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Dune"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RemoveMovie_Success(t *testing.T) {
	_, movieSvc, _, r := setupRouter(t)

	movieSvc.EXPECT().Remove(mock.Anything, 3).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/movies/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RemoveMovie_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/movies/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddShowtime_Success(t *testing.T) {
	_, movieSvc, _, r := setupRouter(t)

	movieSvc.EXPECT().AddShowtime(mock.Anything, 1, "11:30 PM").Return(nil)

	body, _ := json.Marshal(dto.AddShowtimeRequest{Time: "11:30 PM"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies/1/showtimes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddShowtime_MissingTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies/1/showtimes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Seats & bookings ---

func TestHandler_SeatStatus_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	status := make([]bool, 40)
	status[0], status[1], status[2] = true, true, true
	bookingSvc.EXPECT().SeatStatus(mock.Anything, 2).Return(status, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showtimes/2/seats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SeatStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ShowtimeID)
	require.Len(t, resp.Seats, 40)
	assert.True(t, resp.Seats[0])
	assert.False(t, resp.Seats[3])
}

func TestHandler_Availability_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AvailableSeats(mock.Anything, 2).Return(37, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/showtimes/2/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 37, resp.AvailableSeats)
}

func TestHandler_BookSeats_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         "booking-31",
		Username:   "alice",
		MovieName:  "Inception",
		Showtime:   "09:00 AM",
		Seats:      []int{1, 2, 3},
		TotalPrice: 450,
	}
	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.BookSeatsRequest{
		Username:    "alice",
		MovieID:     1,
		ShowtimeID:  2,
		Seats:       []int{1, 2, 3},
		CardDetails: "4111 1111 1111 1111",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking-31", resp.ID)
	assert.Equal(t, 450, resp.TotalPrice)
}

func TestHandler_BookSeats_SeatTaken(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrSeatTaken)

	body, _ := json.Marshal(dto.BookSeatsRequest{
		Username:    "bob",
		MovieID:     1,
		ShowtimeID:  2,
		Seats:       []int{1},
		CardDetails: "card",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookSeats_ShowtimeNotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrShowtimeNotFound)

	body, _ := json.Marshal(dto.BookSeatsRequest{
		Username:    "bob",
		MovieID:     1,
		ShowtimeID:  999,
		Seats:       []int{1},
		CardDetails: "card",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BookSeats_EmptySeats(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"username":"bob","movieId":1,"showtimeId":2,"seats":[],"cardDetails":"card"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookings := []domain.Booking{
		{ID: "booking-31", Username: "alice", MovieName: "Inception", Showtime: "09:00 AM", Seats: []int{1}, TotalPrice: 150},
	}
	bookingSvc.EXPECT().ListByUser(mock.Anything, "alice").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/alice/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "booking-31", resp[0].ID)
}

func TestHandler_GetUserBookings_Empty(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ListByUser(mock.Anything, "nobody").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/nobody/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, movieSvc, _, r := setupRouter(t)

	movieSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
