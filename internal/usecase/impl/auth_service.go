// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"ratesmart/config"
	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/domain/service"
	"ratesmart/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	admin        *config.AdminConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	admin := &config.AdminConfig{}
	if params.Config != nil && params.Config.Admin != nil {
		admin = params.Config.Admin
	}

	return &authService{
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		admin:        admin,
		logger:       params.Logger,
	}
}

// AdminID is the stable subject used in admin tokens.
func AdminID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("ratesmart:admin:"+normalizeEmail(email)))
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a business and logs it in.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.businessRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Country:      input.Country,
		State:        input.State,
		Hours:        strings.TrimSpace(input.Hours),
		Description:  strings.TrimSpace(input.Description),
		IsActive:     true,
	}
	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business registered", slog.String("business_id", business.ID.String()))

	return srv.issue(business)
}

// Login verifies business credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	business, err := srv.businessRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if !business.IsActive || !srv.hasher.Check(input.Password, business.PasswordHash) {
		srv.log(ctx).Warn("Business login rejected", slog.String("business_id", business.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(business)
}

// AdminLogin checks the configured moderator credentials.
func (srv *authService) AdminLogin(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPair, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	if srv.admin.PasswordHash == "" ||
		normalizeEmail(input.Email) != normalizeEmail(srv.admin.Email) ||
		!srv.hasher.Check(input.Password, srv.admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected")

		return nil, domainerrors.ErrInvalidAdminCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(AdminID(srv.admin.Email), entity.Roles{entity.RoleAdmin}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh reissues a token pair. Business grants are dropped once the business is gone.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	roles := entity.RolesFromStrings(claims.Roles)
	if len(roles) == 0 {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if roles.Contains(entity.RoleBusiness) {
		business, err := srv.businessRepo.FindByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, domainerrors.ErrRefreshTokenInvalid
			}

			return nil, errors.Wrap(err, "failed to find business")
		}
		if !business.IsActive {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}
	}

	access, refresh, err := srv.tokenService.GenerateTokens(claims.Subject, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (srv *authService) Authenticate(_ context.Context, accessToken string) (usecase.Principal, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return usecase.Principal{}, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}
	if claims.Type != service.TokenTypeAccess {
		return usecase.Principal{}, domainerrors.ErrUnauthorized.WithDetails("access token required")
	}

	return usecase.Principal{ID: claims.Subject, Roles: entity.RolesFromStrings(claims.Roles)}, nil
}

func (srv *authService) issue(business *entity.Business) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(business.ID, entity.Roles{entity.RoleBusiness}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		TokenPair: usecase.TokenPair{AccessToken: access, RefreshToken: refresh},
		Business:  business,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
