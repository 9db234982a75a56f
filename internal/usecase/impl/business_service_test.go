package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	mockRepo "ratesmart/internal/mocks/repository"
	mockSvc "ratesmart/internal/mocks/service"
	"ratesmart/internal/usecase"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
	qrService    *mockSvc.MockQRCodeService
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return businessServiceFixtures{
		service: NewBusinessService(BusinessServiceParams{
			BusinessRepo: businessRepo,
			Hasher:       hasher,
			QRService:    qrService,
			Logger:       newDiscardLogger(),
		}),
		businessRepo: businessRepo,
		hasher:       hasher,
		qrService:    qrService,
	}
}

func TestBusinessService_Get_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.Get(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_Me(t *testing.T) {
	id := uuid.New()

	t.Run("business caller", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		expected := &entity.Business{ID: id, Name: "Cafe"}

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(expected, nil)

		got, err := fx.service.Me(ctx, businessCaller(id))

		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("admin has no profile", func(t *testing.T) {
		fx := createTestBusinessService(t)

		_, err := fx.service.Me(context.Background(), adminCaller())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("deleted business", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Me(ctx, businessCaller(id))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestBusinessService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("owner changes profile and password", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id, Name: "Old", Email: "old@cafe.com"}, nil)
		fx.businessRepo.EXPECT().FindByEmail(ctx, "new@cafe.com").Return(nil, repository.ErrBusinessNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength("NewSecret1").Return(nil)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("rehashed", nil)
		fx.businessRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

		got, err := fx.service.Update(ctx, businessCaller(id), id, entity.BusinessUpdate{
			Name:     ptr("New"),
			Email:    ptr(" New@Cafe.com"),
			Password: ptr("NewSecret1"),
		})

		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		assert.Equal(t, "new@cafe.com", got.Email)
		assert.Equal(t, "rehashed", got.PasswordHash)
	})

	t.Run("another business is forbidden", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id}, nil)

		_, err := fx.service.Update(ctx, businessCaller(uuid.New()), id, entity.BusinessUpdate{Name: ptr("x")})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id, Email: "old@cafe.com"}, nil)
		fx.businessRepo.EXPECT().FindByEmail(ctx, "taken@cafe.com").Return(&entity.Business{ID: uuid.New()}, nil)

		_, err := fx.service.Update(ctx, adminCaller(), id, entity.BusinessUpdate{Email: ptr("taken@cafe.com")})

		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})
}

func TestBusinessService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("admin deletes", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id}, nil)
		fx.businessRepo.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, adminCaller(), id))
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id}, nil)

		assert.ErrorIs(t, fx.service.Delete(ctx, usecase.Principal{}, id), domainerrors.ErrForbidden)
	})
}

func TestBusinessService_ReviewQR(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, id).Return(&entity.Business{ID: id}, nil)
	fx.qrService.EXPECT().GenerateReviewQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ReviewQR(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
