package memory

import (
	"context"
	"fmt"

	"github.com/srgjo27/movie_ticket/internal/core/domain"
)

type BookingRepository struct {
	ledger map[string][]domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{ledger: make(map[string][]domain.Booking)}
}

func (r *BookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	r.ledger[booking.UserID] = append(r.ledger[booking.UserID], booking.Clone())

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	entries := r.ledger[userID]

	bookings := make([]domain.Booking, 0, len(entries))
	for _, b := range entries {
		bookings = append(bookings, b.Clone())
	}

	return bookings, nil
}

func (r *BookingRepository) GetByPosition(ctx context.Context, userID string, position int) (*domain.Booking, error) {
	entries := r.ledger[userID]
	if position < 1 || position > len(entries) {
		return nil, fmt.Errorf("booking %d: %w", position, domain.ErrInvalidBookingIndex)
	}

	b := entries[position-1].Clone()

	return &b, nil
}

func (r *BookingRepository) Remove(ctx context.Context, userID string, position int) error {
	entries := r.ledger[userID]
	if position < 1 || position > len(entries) {
		return fmt.Errorf("booking %d: %w", position, domain.ErrInvalidBookingIndex)
	}

	entries = append(entries[:position-1], entries[position:]...)
	if len(entries) == 0 {
		delete(r.ledger, userID)
		return nil
	}

	r.ledger[userID] = entries

	return nil
}
