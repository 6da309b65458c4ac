package handler

type createMovieRequest struct {
	Title         string  `json:"title" validate:"required"`
	Genre         string  `json:"genre" validate:"required"`
	Rating        float64 `json:"rating" validate:"required"`
	StreamingLink string  `json:"streamingLink" validate:"required"`
}

// updateMovieRequest models a partial update: absent fields stay nil and
// the stored values are left untouched.
type updateMovieRequest struct {
	Title         *string  `json:"title"`
	Genre         *string  `json:"genre"`
	Rating        *float64 `json:"rating"`
	StreamingLink *string  `json:"streamingLink"`
}
