package memory

import (
	"context"
	"fmt"

	"github.com/srgjo27/movie_ticket/internal/core/domain"
)

type MovieRepository struct {
	movies []*domain.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{}
}

func (r *MovieRepository) Add(ctx context.Context, movie *domain.Movie) (int, error) {
	r.movies = append(r.movies, movie.Clone())

	return len(r.movies) - 1, nil
}

func (r *MovieRepository) GetByIndex(ctx context.Context, index int) (*domain.Movie, error) {
	if index < 0 || index >= len(r.movies) {
		return nil, fmt.Errorf("movie index %d: %w", index, domain.ErrIndexOutOfRange)
	}

	return r.movies[index].Clone(), nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	movies := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		movies = append(movies, m.Clone())
	}

	return movies, nil
}

func (r *MovieRepository) Save(ctx context.Context, index int, movie *domain.Movie) error {
	if index < 0 || index >= len(r.movies) {
		return fmt.Errorf("movie index %d: %w", index, domain.ErrIndexOutOfRange)
	}

	r.movies[index] = movie.Clone()

	return nil
}
