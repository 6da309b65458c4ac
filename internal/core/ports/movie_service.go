package ports

import (
	"context"

	"github.com/movielobby/catalog-api/internal/core/domain"
)

// CreateMovieInput carries all fields required to add a catalog entry.
type CreateMovieInput struct {
	Title         string
	Genre         string
	Rating        float64
	StreamingLink string
}

// ListMoviesInput carries the pagination parameters of the listing read
// path. Zero or negative values are clamped by the service (page to 1,
// limit to the default page size).
type ListMoviesInput struct {
	Page  int
	Limit int
}

// MovieService defines the catalog use cases.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	List(ctx context.Context, input ListMoviesInput) ([]domain.Movie, error)
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
