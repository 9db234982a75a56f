package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/domain/service"
	mockRepo "ratesmart/internal/mocks/repository"
	mockSvc "ratesmart/internal/mocks/service"
	"ratesmart/internal/usecase"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		BusinessRepo: businessRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      srv,
		businessRepo: businessRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	businessID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
	fx.businessRepo.EXPECT().FindByEmail(ctx, "owner@cafe.com").Return(nil, repository.ErrBusinessNotFound)
	fx.hasher.EXPECT().Hash("Secret123").Return("hashed", nil)
	fx.businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(_ context.Context, business *entity.Business) {
			business.ID = businessID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(businessID, []string{"business"}).Return("access", "refresh", nil)

	out, err := fx.service.Signup(ctx, usecase.SignupInput{
		Name:     " Cafe ",
		Email:    " Owner@Cafe.com ",
		Password: "Secret123",
		Country:  "USA",
		State:    "Texas",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "Cafe", out.Business.Name)
	assert.Equal(t, "owner@cafe.com", out.Business.Email)
	assert.Equal(t, "hashed", out.Business.PasswordHash)
	assert.True(t, out.Business.IsActive)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
	fx.businessRepo.EXPECT().FindByEmail(ctx, "owner@cafe.com").Return(&entity.Business{ID: uuid.New()}, nil)

	out, err := fx.service.Signup(ctx, usecase.SignupInput{Email: "owner@cafe.com", Password: "Secret123"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Signup(context.Background(), usecase.SignupInput{Email: "a@b.com", Password: "weak"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login(t *testing.T) {
	businessID := uuid.New()
	active := &entity.Business{ID: businessID, Email: "owner@cafe.com", PasswordHash: "hashed", IsActive: true}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, "owner@cafe.com").Return(active, nil)
		fx.hasher.EXPECT().Check("Secret123", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(businessID, []string{"business"}).Return("a", "r", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "OWNER@cafe.com", Password: "Secret123"})

		require.NoError(t, err)
		assert.Equal(t, active, out.Business)
	})

	t.Run("missing credentials", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: " "})

		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, "nobody@cafe.com").Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@cafe.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, "owner@cafe.com").Return(active, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "owner@cafe.com", Password: "bad"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByEmail(ctx, "owner@cafe.com").Return(nil, errors.New("db down"))

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "owner@cafe.com", Password: "x"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.hasher.EXPECT().Check("AdminPass1", "$2a$10$adminhash").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(AdminID("admin@example.com"), []string{"admin"}).Return("a", "r", nil)

		pair, err := fx.service.AdminLogin(context.Background(), usecase.LoginInput{Email: "Admin@Example.com", Password: "AdminPass1"})

		require.NoError(t, err)
		assert.Equal(t, "a", pair.AccessToken)
	})

	t.Run("wrong email", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.AdminLogin(context.Background(), usecase.LoginInput{Email: "other@example.com", Password: "AdminPass1"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.hasher.EXPECT().Check("nope", "$2a$10$adminhash").Return(false)

		_, err := fx.service.AdminLogin(context.Background(), usecase.LoginInput{Email: "admin@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	businessID := uuid.New()

	t.Run("business token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{
			Subject: businessID,
			Roles:   []string{"business"},
			Type:    service.TokenTypeRefresh,
		}, nil)
		fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, IsActive: true}, nil)
		fx.tokenService.EXPECT().GenerateTokens(businessID, []string{"business"}).Return("a2", "r2", nil)

		pair, err := fx.service.Refresh(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, &usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, pair)
	})

	t.Run("access token rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("access").Return(&service.Claims{
			Subject: businessID,
			Roles:   []string{"business"},
			Type:    service.TokenTypeAccess,
		}, nil)

		_, err := fx.service.Refresh(context.Background(), "access")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted business", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{
			Subject: businessID,
			Roles:   []string{"business"},
			Type:    service.TokenTypeRefresh,
		}, nil)
		fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Refresh(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)
	subject := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
		Subject: subject,
		Roles:   []string{"admin"},
		Type:    service.TokenTypeAccess,
	}, nil)
	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

	principal, err := fx.service.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, subject, principal.ID)
	assert.True(t, principal.IsAdmin())

	_, err = fx.service.Authenticate(context.Background(), "bad")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminID_IsStable(t *testing.T) {
	assert.Equal(t, AdminID("admin@example.com"), AdminID(" ADMIN@example.com"))
	assert.NotEqual(t, AdminID("admin@example.com"), AdminID("other@example.com"))
}
