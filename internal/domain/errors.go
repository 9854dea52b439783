package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUsernameTaken   = errors.New("username is already taken")
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
)

var (
	ErrSeatTaken      = errors.New("seat is already booked")
	ErrSeatOutOfRange = errors.New("seat number out of range")
)

var (
	ErrValidation = errors.New("validation error")
)
