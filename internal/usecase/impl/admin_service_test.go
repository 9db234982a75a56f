package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	mockRepo "ratesmart/internal/mocks/repository"
	"ratesmart/internal/usecase"
)

func TestAdminService_Reset(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewAdminService(AdminServiceParams{TxManager: txManager, Logger: newDiscardLogger()})

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			reviews := mockRepo.NewMockReviewRepository(t)
			products := mockRepo.NewMockProductRepository(t)
			businesses := mockRepo.NewMockBusinessRepository(t)

			factory.EXPECT().NewReviewRepository().Return(reviews)
			factory.EXPECT().NewProductRepository().Return(products)
			factory.EXPECT().NewBusinessRepository().Return(businesses)
			reviews.EXPECT().DeleteAll(ctx).Return(int64(7), nil)
			products.EXPECT().DeleteAll(ctx).Return(int64(3), nil)
			businesses.EXPECT().DeleteNonStaff(ctx).Return(int64(2), nil)

			return fn(factory)
		})

	out, err := srv.Reset(ctx, adminCaller())

	require.NoError(t, err)
	assert.Equal(t, &usecase.ResetOutput{Reviews: 7, Products: 3, Businesses: 2}, out)
}

func TestAdminService_Reset_RequiresAdmin(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewAdminService(AdminServiceParams{TxManager: txManager, Logger: newDiscardLogger()})

	_, err := srv.Reset(context.Background(), businessCaller(AdminID("x@y.z")))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminToken)
}

func TestAdminService_Reset_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewAdminService(AdminServiceParams{TxManager: txManager, Logger: newDiscardLogger()})

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			reviews := mockRepo.NewMockReviewRepository(t)

			factory.EXPECT().NewReviewRepository().Return(reviews)
			reviews.EXPECT().DeleteAll(ctx).Return(int64(0), errors.New("locked"))

			return fn(factory)
		})

	out, err := srv.Reset(ctx, adminCaller())

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}
