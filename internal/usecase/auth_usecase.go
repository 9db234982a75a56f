package usecase

import (
	"context"

	"ratesmart/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a business.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Country     string
	State       string
	Hours       string
	Description string
}

// LoginInput defines the credentials for business or admin login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthOutput is returned by signup and login.
type AuthOutput struct {
	TokenPair
	Business *entity.Business
}

// AuthUsecase defines authentication for businesses and the admin.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	AdminLogin(ctx context.Context, input LoginInput) (*TokenPair, error)

	// Refresh exchanges a valid refresh token for a new pair with the same roles.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Authenticate validates an access token and returns its caller.
	Authenticate(ctx context.Context, accessToken string) (Principal, error)
}
