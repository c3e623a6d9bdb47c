package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID            uuid.UUID
	UserID        string
	MovieIndex    int
	ShowtimeIndex int
	Seats         []Seat
	TotalPrice    decimal.Decimal
	CreatedAt     time.Time
}

func (b Booking) Clone() Booking {
	b.Seats = append([]Seat(nil), b.Seats...)
	return b
}
