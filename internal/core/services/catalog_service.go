package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/movie_ticket/internal/core/domain"
)

type AddMovieRequest struct {
	Name          string
	Showtimes     []string
	SeatsCapacity int
	Price         decimal.Decimal
}

func (s *BookingService) ListMovies(ctx context.Context) ([]domain.MovieSummary, error) {
	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.MovieSummary, 0, len(movies))
	for i, m := range movies {
		summaries = append(summaries, domain.MovieSummary{
			Index:          i,
			Name:           m.Name,
			Price:          m.Price,
			AvailableSeats: m.AvailableSeats,
		})
	}

	return summaries, nil
}

func (s *BookingService) ListShowtimes(ctx context.Context, movieIndex int) ([]string, error) {
	movie, err := s.movieRepo.GetByIndex(ctx, movieIndex)
	if err != nil {
		return nil, err
	}

	return movie.Showtimes, nil
}

// SeatChart returns a copy of the movie's grid. The grid is shared by all of
// the movie's showtimes.
func (s *BookingService) SeatChart(ctx context.Context, movieIndex int) (domain.SeatGrid, error) {
	movie, err := s.movieRepo.GetByIndex(ctx, movieIndex)
	if err != nil {
		return nil, err
	}

	return movie.Seats, nil
}

// AddMovie appends a movie with an empty grid of the configured size. The
// capacity is stored as given; it is not checked against the grid.
func (s *BookingService) AddMovie(ctx context.Context, req AddMovieRequest) (int, error) {
	movie := domain.NewMovie(req.Name, req.Showtimes, req.SeatsCapacity, req.Price, s.cfg.SeatRows, s.cfg.SeatCols)

	index, err := s.movieRepo.Add(ctx, movie)
	if err != nil {
		return 0, fmt.Errorf("failed to add movie: %w", err)
	}

	s.logger.Info("movie added",
		slog.Int("movie_index", index),
		slog.String("movie", req.Name),
		slog.Int("showtimes", len(req.Showtimes)),
		slog.Int("capacity", req.SeatsCapacity),
		slog.String("price", req.Price.StringFixed(2)),
	)

	return index, nil
}

// ModifyAvailableSeats overwrites the declared seat count. The grid is left
// untouched.
func (s *BookingService) ModifyAvailableSeats(ctx context.Context, movieIndex, seats int) error {
	movie, err := s.movieRepo.GetByIndex(ctx, movieIndex)
	if err != nil {
		return err
	}

	previous := movie.AvailableSeats
	movie.AvailableSeats = seats

	if err := s.movieRepo.Save(ctx, movieIndex, movie); err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	s.logger.Info("available seats overridden",
		slog.Int("movie_index", movieIndex),
		slog.String("movie", movie.Name),
		slog.Int("from", previous),
		slog.Int("to", seats),
		slog.Int("grid_available", movie.Seats.Available()),
	)

	return nil
}

func (s *BookingService) MovieStats(ctx context.Context) ([]domain.MovieStats, error) {
	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.MovieStats, 0, len(movies))
	for _, m := range movies {
		stats = append(stats, domain.MovieStats{
			Name:        m.Name,
			TicketsSold: m.TicketsSold,
			Revenue:     m.Revenue,
		})
	}

	return stats, nil
}
