package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Create adds a movie to the catalog.
//
// @Summary      Add a new movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  domain.Movie
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:         req.Title,
		Genre:         req.Genre,
		Rating:        req.Rating,
		StreamingLink: req.StreamingLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, movie)
}

// List returns a page of the catalog.
//
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {array}   domain.Movie
// @Failure      500    {object}  map[string]string
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	movies, err := h.service.List(c.Request().Context(), ports.ListMoviesInput{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []domain.Movie{}
	}

	return c.JSON(http.StatusOK, movies)
}

// Search returns all movies matching the query.
//
// @Summary      Search movies by title or genre
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search term"
// @Success      200  {array}   domain.Movie
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /movies/search [get]
func (h *MovieHandler) Search(c echo.Context) error {
	movies, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if movies == nil {
		movies = []domain.Movie{}
	}

	return c.JSON(http.StatusOK, movies)
}

// Update applies a partial update to a movie.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Movie id"
// @Param        body  body      updateMovieRequest  true  "Fields to change"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.MovieUpdate{
		Title:         req.Title,
		Genre:         req.Genre,
		Rating:        req.Rating,
		StreamingLink: req.StreamingLink,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movie)
}

// Delete removes a movie from the catalog.
//
// @Summary      Delete a movie
// @Tags         movies
// @Security     BearerAuth
// @Param        id   path  string  true  "Movie id"
// @Success      204  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
