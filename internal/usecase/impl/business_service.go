package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/domain/entity"
	domainerrors "ratesmart/internal/domain/errors"
	"ratesmart/internal/domain/repository"
	"ratesmart/internal/domain/service"
	"ratesmart/internal/usecase"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) Get(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

func (srv *businessService) List(ctx context.Context) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

func (srv *businessService) Me(ctx context.Context, caller usecase.Principal) (*entity.Business, error) {
	if !caller.Roles.Contains(entity.RoleBusiness) {
		return nil, domainerrors.ErrForbidden.WithDetails("business account required")
	}

	business, err := srv.Get(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBusinessNotFound) {
			// The token outlived its business.
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, err
	}

	return business, nil
}

func (srv *businessService) Update(ctx context.Context, caller usecase.Principal, id uuid.UUID, update entity.BusinessUpdate) (*entity.Business, error) {
	business, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanManage(id) {
		return nil, domainerrors.ErrForbidden
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
		}
		if email != business.Email {
			if _, err := srv.businessRepo.FindByEmail(ctx, email); err == nil {
				return nil, domainerrors.ErrEmailAlreadyExists
			} else if !errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, errors.Wrap(err, "failed to check email")
			}
		}
		update.Email = &email
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	}

	update.Apply(business)

	if update.Password != nil && *update.Password != "" {
		if err := srv.hasher.ValidatePasswordStrength(*update.Password); err != nil {
			return nil, err
		}
		hash, err := srv.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		business.PasswordHash = hash
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	srv.log(ctx).Info("Business updated",
		slog.String("business_id", id.String()),
		slog.Bool("by_admin", caller.IsAdmin()),
	)

	return business, nil
}

func (srv *businessService) Delete(ctx context.Context, caller usecase.Principal, id uuid.UUID) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}
	if !caller.CanManage(id) {
		return domainerrors.ErrForbidden
	}

	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).Info("Business deleted",
		slog.String("business_id", id.String()),
		slog.Bool("by_admin", caller.IsAdmin()),
	)

	return nil
}

func (srv *businessService) ReviewQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateReviewQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate review QR code")
	}

	return png, nil
}
