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
	"ratesmart/internal/usecase"
)

type productService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{BusinessID: businessID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, caller usecase.Principal, id uuid.UUID) (*entity.Product, error) {
	if !caller.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthorized
	}

	return srv.find(ctx, id)
}

func (srv *productService) Create(ctx context.Context, caller usecase.Principal, input usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.BusinessID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business is required")
	}
	if !caller.CanManage(input.BusinessID) {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot add products for another business")
	}

	if err := srv.ensureBusiness(ctx, input.BusinessID); err != nil {
		return nil, err
	}

	product := &entity.Product{BusinessID: input.BusinessID, Name: name}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("business_id", product.BusinessID.String()),
	)

	// Reload for the joined business name.
	return srv.find(ctx, product.ID)
}

func (srv *productService) Update(ctx context.Context, caller usecase.Principal, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanManage(product.BusinessID) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		product.Name = name
	}
	if input.BusinessID != nil && *input.BusinessID != product.BusinessID {
		// Moving a product between businesses is a moderator action.
		if !caller.IsAdmin() {
			return nil, domainerrors.ErrForbidden.WithDetails("cannot move product to another business")
		}
		if err := srv.ensureBusiness(ctx, *input.BusinessID); err != nil {
			return nil, err
		}
		product.BusinessID = *input.BusinessID
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.find(ctx, id)
}

func (srv *productService) Delete(ctx context.Context, caller usecase.Principal, id uuid.UUID) error {
	product, err := srv.find(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanManage(product.BusinessID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

func (srv *productService) find(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ensureBusiness(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.businessRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails("business does not exist")
		}

		return errors.Wrap(err, "failed to find business")
	}

	return nil
}
