package domain

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrSeatOutOfRange      = errors.New("seat is outside the seating grid")
	ErrSeatUnavailable     = errors.New("one or more selected seats are already booked")
	ErrInvalidBookingIndex = errors.New("invalid booking number")
)
