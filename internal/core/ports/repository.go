package ports

import (
	"context"

	"github.com/srgjo27/movie_ticket/internal/core/domain"
)

// MovieRepository stores the catalog. Movies are addressed by their catalog
// index; implementations hand out copies, so changes only land through Save.
type MovieRepository interface {
	Add(ctx context.Context, movie *domain.Movie) (int, error)
	GetByIndex(ctx context.Context, index int) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	Save(ctx context.Context, index int, movie *domain.Movie) error
}

// BookingRepository is the per-user ledger. Positions are 1-based.
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetByPosition(ctx context.Context, userID string, position int) (*domain.Booking, error)
	Remove(ctx context.Context, userID string, position int) error
}
