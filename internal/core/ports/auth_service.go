package ports

import (
	"context"

	"github.com/movielobby/catalog-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Contact  string
	Role     string
	Password string
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	// Register hashes the password and persists the account. The returned
	// user carries no password material in any form.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed identity token.
	// Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials, indistinguishably.
	Login(ctx context.Context, email, password string) (string, error)
}
