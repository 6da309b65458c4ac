package ports

import (
	"context"

	"github.com/movielobby/catalog-api/internal/core/domain"
)

// MovieRepository defines persistence operations for catalog entries.
// Ordering of Find and Search results is the store's natural order; no
// explicit sort key is imposed.
type MovieRepository interface {
	// Create inserts a movie and returns the stored record with its id.
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	// Find returns the slice of movies in [skip, skip+limit).
	Find(ctx context.Context, skip, limit int64) ([]domain.Movie, error)
	// Search returns every movie whose title or genre contains query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	// Update applies the non-nil fields of update to the record and returns
	// the post-update document. Returns domain.ErrMovieNotFound when the id
	// does not exist and domain.ErrInvalidMovieID when it is not a valid
	// store id.
	Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error)
	// Delete removes the record. Same error contract as Update.
	Delete(ctx context.Context, id string) error
}
