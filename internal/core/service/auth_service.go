package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/ports"
	"github.com/movielobby/catalog-api/internal/core/token"
)

// TokenIssuer abstracts the token manager for login.
type TokenIssuer interface {
	Issue(id token.Identity) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register hashes the password with bcrypt and persists the account. The
// returned user has its password hash cleared so no credential material
// crosses the service boundary.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Contact == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Contact:      input.Contact,
		Role:         role,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	created.PasswordHash = ""
	return created, nil
}

// Login looks the account up by email and compares the password against the
// stored hash. Unknown email and wrong password collapse into the same
// ErrInvalidCredentials so callers cannot probe which of the two failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(token.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return signed, nil
}
