package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/movielobby/catalog-api/internal/api"
	"github.com/movielobby/catalog-api/internal/api/handler"
	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/ports"
)

// stubMovieService returns canned results so the handler's HTTP mapping can
// be exercised in isolation.
type stubMovieService struct {
	movies    []domain.Movie
	createErr error
	updateErr error
	deleteErr error
	searchErr error
	lastList  ports.ListMoviesInput
}

func (s *stubMovieService) Create(_ context.Context, in ports.CreateMovieInput) (*domain.Movie, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Movie{ID: "m1", Title: in.Title, Genre: in.Genre, Rating: in.Rating, StreamingLink: in.StreamingLink}, nil
}

func (s *stubMovieService) List(_ context.Context, in ports.ListMoviesInput) ([]domain.Movie, error) {
	s.lastList = in
	return s.movies, nil
}

func (s *stubMovieService) Search(_ context.Context, query string) ([]domain.Movie, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.movies, nil
}

func (s *stubMovieService) Update(_ context.Context, id string, u domain.MovieUpdate) (*domain.Movie, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.Movie{ID: id, Genre: deref(u.Genre)}, nil
}

func (s *stubMovieService) Delete(_ context.Context, id string) error {
	return s.deleteErr
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMovieHandler_CreateMissingField(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{})
	e.POST("/movies", h.Create)

	rec := doJSON(e, http.MethodPost, "/movies",
		`{"title":"Inception","genre":"Sci-Fi","streamingLink":"https://s"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body["error"], "rating") {
		t.Fatalf("expected a field-specific message, got %q", body["error"])
	}
}

func TestMovieHandler_Create(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{})
	e.POST("/movies", h.Create)

	rec := doJSON(e, http.MethodPost, "/movies",
		`{"title":"Inception","genre":"Sci-Fi","rating":8.8,"streamingLink":"https://s"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var movie domain.Movie
	if err := json.Unmarshal(rec.Body.Bytes(), &movie); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if movie.ID == "" || movie.Title != "Inception" {
		t.Fatalf("unexpected movie payload: %+v", movie)
	}
}

func TestMovieHandler_ListPassesPaginationAndDefaults(t *testing.T) {
	e := newEcho()
	svc := &stubMovieService{}
	h := handler.NewMovieHandler(svc)
	e.GET("/movies", h.List)

	rec := doJSON(e, http.MethodGet, "/movies?page=3&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastList.Page != 3 || svc.lastList.Limit != 5 {
		t.Fatalf("pagination not forwarded: %+v", svc.lastList)
	}

	doJSON(e, http.MethodGet, "/movies", "")
	if svc.lastList.Page != 1 || svc.lastList.Limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got %+v", svc.lastList)
	}

	// An empty catalog serializes as [], never null.
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array body, got %q", rec.Body.String())
	}
}

func TestMovieHandler_SearchMissingQuery(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{searchErr: domain.ErrMissingQuery})
	e.GET("/movies/search", h.Search)

	rec := doJSON(e, http.MethodGet, "/movies/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovieHandler_UpdateNotFound(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{updateErr: domain.ErrMovieNotFound})
	e.PUT("/movies/:id", h.Update)

	rec := doJSON(e, http.MethodPut, "/movies/652f8a0000000000000000aa", `{"genre":"Comedy"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovieHandler_UpdateInvalidID(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{updateErr: domain.ErrInvalidMovieID})
	e.PUT("/movies/:id", h.Update)

	rec := doJSON(e, http.MethodPut, "/movies/not-an-id", `{"genre":"Comedy"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovieHandler_Delete(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{})
	e.DELETE("/movies/:id", h.Delete)

	rec := doJSON(e, http.MethodDelete, "/movies/652f8a0000000000000000aa", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestMovieHandler_DeleteNotFound(t *testing.T) {
	e := newEcho()
	h := handler.NewMovieHandler(&stubMovieService{deleteErr: domain.ErrMovieNotFound})
	e.DELETE("/movies/:id", h.Delete)

	rec := doJSON(e, http.MethodDelete, "/movies/652f8a0000000000000000aa", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
