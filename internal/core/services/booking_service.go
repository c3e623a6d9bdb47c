package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/movie_ticket/internal/core/domain"
	"github.com/srgjo27/movie_ticket/internal/core/ports"
)

type BookTicketsRequest struct {
	UserID        string
	MovieIndex    int
	ShowtimeIndex int
	Seats         []domain.Seat
}

type Config struct {
	SeatRows int
	SeatCols int
}

// BookingService is the booking engine: it owns the catalog and the ledger
// and is the only place seat state changes. It is not safe for concurrent use.
type BookingService struct {
	movieRepo   ports.MovieRepository
	bookingRepo ports.BookingRepository
	logger      *slog.Logger
	cfg         Config
	now         func() time.Time
}

func NewBookingService(movieRepo ports.MovieRepository, bookingRepo ports.BookingRepository, logger *slog.Logger, cfg Config) *BookingService {
	if cfg.SeatRows <= 0 {
		cfg.SeatRows = domain.DefaultSeatRows
	}
	if cfg.SeatCols <= 0 {
		cfg.SeatCols = domain.DefaultSeatCols
	}

	return &BookingService{
		movieRepo:   movieRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *BookingService) BookTickets(ctx context.Context, req BookTicketsRequest) (*domain.Booking, error) {
	movie, err := s.movieRepo.GetByIndex(ctx, req.MovieIndex)
	if err != nil {
		return nil, err
	}

	if !movie.HasShowtime(req.ShowtimeIndex) {
		return nil, fmt.Errorf("showtime index %d of %q: %w", req.ShowtimeIndex, movie.Name, domain.ErrIndexOutOfRange)
	}

	if err := movie.CheckSeats(req.Seats); err != nil {
		return nil, err
	}

	original := movie.Clone()
	total := movie.Reserve(req.Seats)

	if err := s.movieRepo.Save(ctx, req.MovieIndex, movie); err != nil {
		return nil, fmt.Errorf("failed to save seat state: %w", err)
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		UserID:        req.UserID,
		MovieIndex:    req.MovieIndex,
		ShowtimeIndex: req.ShowtimeIndex,
		Seats:         append([]domain.Seat(nil), req.Seats...),
		TotalPrice:    total,
		CreatedAt:     s.now(),
	}

	if err := s.bookingRepo.Append(ctx, booking); err != nil {
		s.rollbackMovie(ctx, req.MovieIndex, original)
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		slog.String("booking_id", booking.ID.String()),
		slog.String("user", req.UserID),
		slog.String("movie", movie.Name),
		slog.String("showtime", movie.Showtimes[req.ShowtimeIndex]),
		slog.Int("seats", len(req.Seats)),
		slog.String("total", total.StringFixed(2)),
	)

	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// CancelBooking releases the booking at the given 1-based position of the
// user's ledger. Later bookings move up one position.
func (s *BookingService) CancelBooking(ctx context.Context, userID string, position int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByPosition(ctx, userID, position)
	if err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.GetByIndex(ctx, booking.MovieIndex)
	if err != nil {
		return nil, err
	}

	original := movie.Clone()
	movie.Release(booking.Seats, booking.TotalPrice)

	if err := s.movieRepo.Save(ctx, booking.MovieIndex, movie); err != nil {
		return nil, fmt.Errorf("failed to save seat state: %w", err)
	}

	if err := s.bookingRepo.Remove(ctx, userID, position); err != nil {
		s.rollbackMovie(ctx, booking.MovieIndex, original)
		return nil, fmt.Errorf("failed to remove booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		slog.String("booking_id", booking.ID.String()),
		slog.String("user", userID),
		slog.String("movie", movie.Name),
		slog.Int("seats", len(booking.Seats)),
		slog.String("refund", booking.TotalPrice.StringFixed(2)),
	)

	return booking, nil
}

func (s *BookingService) rollbackMovie(ctx context.Context, index int, original *domain.Movie) {
	if err := s.movieRepo.Save(ctx, index, original); err != nil {
		s.logger.Error("failed to roll back seat state", slog.Int("movie_index", index), slog.Any("error", err))
	}
}
