package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "ratesmart/internal/delivery/context"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/usecase"
)

type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Reset(ctx context.Context, caller usecase.Principal) (*usecase.ResetOutput, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrInvalidAdminToken
	}

	output := &usecase.ResetOutput{}
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		if output.Reviews, err = factory.NewReviewRepository().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}
		if output.Products, err = factory.NewProductRepository().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete products")
		}
		if output.Businesses, err = factory.NewBusinessRepository().DeleteNonStaff(ctx); err != nil {
			return errors.Wrap(err, "failed to delete businesses")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("System reset failed", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "system reset failed")
	}

	srv.log(ctx).Warn("System reset",
		slog.Int64("reviews", output.Reviews),
		slog.Int64("products", output.Products),
		slog.Int64("businesses", output.Businesses),
	)

	return output, nil
}
