package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/movie_ticket/internal/core/services"
)

type Catalog interface {
	AddMovie(ctx context.Context, req services.AddMovieRequest) (int, error)
}

// Movies is the launch catalog the desk opens with.
func Movies() []services.AddMovieRequest {
	return []services.AddMovieRequest{
		{
			Name:          "Avengers: Endgame",
			Showtimes:     []string{"10:00 AM", "01:00 PM", "04:00 PM", "07:00 PM"},
			SeatsCapacity: 50,
			Price:         decimal.RequireFromString("12.50"),
		},
		{
			Name:          "Spider-Man: No Way Home",
			Showtimes:     []string{"11:00 AM", "02:00 PM", "05:00 PM", "08:00 PM"},
			SeatsCapacity: 40,
			Price:         decimal.RequireFromString("10.00"),
		},
		{
			Name:          "The Batman",
			Showtimes:     []string{"09:00 AM", "12:00 PM", "03:00 PM", "06:00 PM"},
			SeatsCapacity: 30,
			Price:         decimal.RequireFromString("15.00"),
		},
	}
}

func Load(ctx context.Context, catalog Catalog) error {
	for _, req := range Movies() {
		if _, err := catalog.AddMovie(ctx, req); err != nil {
			return fmt.Errorf("seed %q: %w", req.Name, err)
		}
	}

	return nil
}
