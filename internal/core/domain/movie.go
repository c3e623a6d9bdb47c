package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Movie is a catalog entry. Its identity is its position in the catalog.
//
// AvailableSeats is a declared counter: it starts at the capacity the admin
// supplied, moves with bookings and cancellations, and can be overwritten by
// an admin. It is never recomputed from Seats, so the two may disagree.
type Movie struct {
	Name           string
	Showtimes      []string
	Price          decimal.Decimal
	Seats          SeatGrid
	AvailableSeats int
	TicketsSold    int
	Revenue        decimal.Decimal
}

func NewMovie(name string, showtimes []string, capacity int, price decimal.Decimal, rows, cols int) *Movie {
	return &Movie{
		Name:           name,
		Showtimes:      append([]string(nil), showtimes...),
		Price:          price,
		Seats:          NewSeatGrid(rows, cols),
		AvailableSeats: capacity,
		Revenue:        decimal.Zero,
	}
}

func (m *Movie) HasShowtime(index int) bool {
	return index >= 0 && index < len(m.Showtimes)
}

// CheckSeats verifies every requested seat is inside the grid, free, and
// listed only once. It does not modify the movie.
func (m *Movie) CheckSeats(seats []Seat) error {
	for _, s := range seats {
		if !m.Seats.Contains(s) {
			return fmt.Errorf("seat %s: %w", s, ErrSeatOutOfRange)
		}
	}

	seen := make(map[Seat]struct{}, len(seats))
	for _, s := range seats {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("seat %s requested twice: %w", s, ErrSeatUnavailable)
		}
		seen[s] = struct{}{}

		if !m.Seats.IsAvailable(s) {
			return fmt.Errorf("seat %s: %w", s, ErrSeatUnavailable)
		}
	}

	return nil
}

// Reserve books the seats and returns the amount charged. Callers must run
// CheckSeats first.
func (m *Movie) Reserve(seats []Seat) decimal.Decimal {
	for _, s := range seats {
		m.Seats.set(s, false)
	}

	total := m.Price.Mul(decimal.NewFromInt(int64(len(seats))))

	m.AvailableSeats -= len(seats)
	m.TicketsSold += len(seats)
	m.Revenue = m.Revenue.Add(total)

	return total
}

// Release is the inverse of Reserve for a booking's seats and total.
func (m *Movie) Release(seats []Seat, total decimal.Decimal) {
	for _, s := range seats {
		if m.Seats.Contains(s) {
			m.Seats.set(s, true)
		}
	}

	m.AvailableSeats += len(seats)
	m.TicketsSold -= len(seats)
	m.Revenue = m.Revenue.Sub(total)
}

func (m *Movie) Clone() *Movie {
	c := *m
	c.Showtimes = append([]string(nil), m.Showtimes...)
	c.Seats = m.Seats.Clone()

	return &c
}

type MovieSummary struct {
	Index          int
	Name           string
	Price          decimal.Decimal
	AvailableSeats int
}

type MovieStats struct {
	Name        string
	TicketsSold int
	Revenue     decimal.Decimal
}
