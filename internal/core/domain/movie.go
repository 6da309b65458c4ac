package domain

import "errors"

var ErrMovieNotFound = errors.New("movie not found")
var ErrInvalidMovieID = errors.New("invalid movie id")
var ErrMissingFields = errors.New("missing required parameters")
var ErrMissingQuery = errors.New("missing search query")

// Movie is a single catalog entry. The ID is assigned by the store on
// insert; all other fields are required at creation time.
type Movie struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Rating        float64 `json:"rating"`
	StreamingLink string  `json:"streamingLink"`
}

// MovieUpdate is an explicit optional-field diff. Only non-nil fields are
// applied to the stored record; nil fields are left untouched, never
// cleared.
type MovieUpdate struct {
	Title         *string
	Genre         *string
	Rating        *float64
	StreamingLink *string
}

// Empty reports whether the diff carries no changes at all.
func (u MovieUpdate) Empty() bool {
	return u.Title == nil && u.Genre == nil && u.Rating == nil && u.StreamingLink == nil
}
