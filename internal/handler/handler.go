package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/domain"
	"github.com/abiahshaiju-png/Online-Movie-Ticket-Booking/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, password string) error
}

type MovieSvc interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Add(ctx context.Context, input domain.CreateMovieInput) (*domain.Movie, error)
	Remove(ctx context.Context, movieID int) error
	AddShowtime(ctx context.Context, movieID int, time string) error
}

type BookingSvc interface {
	SeatStatus(ctx context.Context, showtimeID int) ([]bool, error)
	AvailableSeats(ctx context.Context, showtimeID int) (int, error)
	Book(ctx context.Context, input domain.BookSeatsInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, username string) ([]domain.Booking, error)
}

// AdminCredentials is the fixed admin login pair. Compared directly and
// never stored in the document.
type AdminCredentials struct {
	Username string
	Password string
}

type Handler struct {
	userService    UserSvc
	movieService   MovieSvc
	bookingService BookingSvc
	admin          AdminCredentials
}

func NewHandler(userService UserSvc, movieService MovieSvc, bookingService BookingSvc, admin AdminCredentials) *Handler {
	return &Handler{
		userService:    userService,
		movieService:   movieService,
		bookingService: bookingService,
		admin:          admin,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{Username: req.Username})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) AdminLogin(c *ginext.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Username != h.admin.Username || req.Password != h.admin.Password {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid admin credentials"})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Movies

func (h *Handler) ListMovies(c *ginext.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		resp = append(resp, dto.ToMovieResponse(&movies[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddMovie(c *ginext.Context) {
	var req dto.AddMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	movie, err := h.movieService.Add(c.Request.Context(), domain.CreateMovieInput{
		Name:     req.Name,
		Genre:    req.Genre,
		Director: req.Director,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovieResponse(movie))
}

func (h *Handler) RemoveMovie(c *ginext.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid movie id"})
		return
	}

	if err = h.movieService.Remove(c.Request.Context(), movieID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) AddShowtime(c *ginext.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid movie id"})
		return
	}

	var req dto.AddShowtimeRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err = h.movieService.AddShowtime(c.Request.Context(), movieID, req.Time); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "ok"})
}

// Seats & bookings

func (h *Handler) SeatStatus(c *ginext.Context) {
	showtimeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showtime id"})
		return
	}

	status, err := h.bookingService.SeatStatus(c.Request.Context(), showtimeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeatStatusResponse{
		ShowtimeID: showtimeID,
		Seats:      status,
	})
}

func (h *Handler) Availability(c *ginext.Context) {
	showtimeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid showtime id"})
		return
	}

	available, err := h.bookingService.AvailableSeats(c.Request.Context(), showtimeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ShowtimeID:     showtimeID,
		AvailableSeats: available,
	})
}

func (h *Handler) BookSeats(c *ginext.Context) {
	var req dto.BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.BookSeatsInput{
		Username:    req.Username,
		MovieID:     req.MovieID,
		ShowtimeID:  req.ShowtimeID,
		Seats:       req.Seats,
		CardDetails: req.CardDetails,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	username := c.Param("username")

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrShowtimeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSeatTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSeatOutOfRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
