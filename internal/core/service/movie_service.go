package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/movielobby/catalog-api/internal/api/metrics"
	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// MovieService orchestrates validation, pagination math, search-query
// construction and cache population around the movie repository.
type MovieService struct {
	repo     ports.MovieRepository
	cache    ports.ResponseCache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewMovieService builds a MovieService. cacheTTL bounds the staleness of
// cached listings; when it is zero or negative, 60 seconds is used.
func NewMovieService(repo ports.MovieRepository, cache ports.ResponseCache, cacheTTL time.Duration, logger zerolog.Logger) *MovieService {
	if cacheTTL <= 0 {
		cacheTTL = 60 * time.Second
	}
	return &MovieService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Create persists a new catalog entry. All four fields are required; the
// check runs before any store call.
func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if input.Title == "" || input.Genre == "" || input.Rating == 0 || input.StreamingLink == "" {
		return nil, domain.ErrMissingFields
	}

	movie := &domain.Movie{
		Title:         input.Title,
		Genre:         input.Genre,
		Rating:        input.Rating,
		StreamingLink: input.StreamingLink,
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create movie")
		return nil, err
	}

	metrics.MoviesCreatedTotal.Inc()
	s.logger.Info().Str("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

// List returns the page of movies [skip, skip+limit) in store order, where
// skip = (page-1) * limit. Pages are served from the response cache when a
// live entry exists; a miss reads the store and populates the cache with
// the configured TTL.
//
// Writes do not invalidate cached pages: the TTL is the sole staleness
// bound, so a listing may lag a mutation by at most cacheTTL.
func (s *MovieService) List(ctx context.Context, input ports.ListMoviesInput) ([]domain.Movie, error) {
	page, limit := input.Page, input.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	key := listKey(page, limit)

	var cached []domain.Movie
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// Cache trouble degrades to the store, it never fails the request.
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()

	skip := int64(page-1) * int64(limit)
	movies, err := s.repo.Find(ctx, skip, int64(limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list movies")
		return nil, err
	}

	if err := s.cache.Set(ctx, key, movies, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return movies, nil
}

// Search returns every movie whose title or genre contains query,
// case-insensitively. Results are not cached.
func (s *MovieService) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	if query == "" {
		return nil, domain.ErrMissingQuery
	}

	movies, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search movies")
		return nil, err
	}
	return movies, nil
}

// Update applies the non-nil fields of update to the stored record and
// returns the post-update document.
func (s *MovieService) Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error) {
	if id == "" {
		return nil, domain.ErrInvalidMovieID
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("movie_id", id).Msg("movie updated")
	return updated, nil
}

// Delete removes the record with the given id.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidMovieID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("movie_id", id).Msg("movie deleted")
	return nil
}

// listKey normalizes a listing request to its cache key. Only the
// parameters the read path consumes participate, so semantically identical
// requests share an entry regardless of irrelevant query noise.
func listKey(page, limit int) string {
	return fmt.Sprintf("movies:list:page=%d:limit=%d", page, limit)
}
