package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/srgjo27/movie_ticket/internal/adapter/repository/memory"
	"github.com/srgjo27/movie_ticket/internal/core/services"
	"github.com/srgjo27/movie_ticket/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBookingService(
		memory.NewMovieRepository(),
		memory.NewBookingRepository(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		services.Config{},
	)

	require.NoError(t, seed.Load(ctx, svc))

	movies, err := svc.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, "Avengers: Endgame", movies[0].Name)
	assert.Equal(t, "12.5", movies[0].Price.String())
	assert.Equal(t, 50, movies[0].AvailableSeats)
	assert.Equal(t, 40, movies[1].AvailableSeats)
	assert.Equal(t, 30, movies[2].AvailableSeats)

	chart, err := svc.SeatChart(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 50, chart.Available())
}
