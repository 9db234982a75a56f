package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ratesmart/internal/delivery/api/dto"
	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/infra/session"
)

// API is the part of the REST api the pages use. *apiclient.Client
// implements it.
type API interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*dto.Tokens, error)
	Me(ctx context.Context, token string) (*dto.Business, error)
	ListBusinesses(ctx context.Context) ([]dto.Business, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*dto.Business, error)
	UpdateBusiness(ctx context.Context, token string, id uuid.UUID, req dto.UpdateBusinessRequest) (*dto.Business, error)
	DeleteBusiness(ctx context.Context, token string, id uuid.UUID) error
	BusinessQR(ctx context.Context, id uuid.UUID) ([]byte, error)
	ListProducts(ctx context.Context, businessID uuid.UUID) ([]dto.Product, error)
	CreateProduct(ctx context.Context, token string, req dto.CreateProductRequest) (*dto.Product, error)
	DeleteProduct(ctx context.Context, token string, id uuid.UUID) error
	ListReviews(ctx context.Context, businessID uuid.UUID) ([]dto.Review, error)
	CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*dto.Review, error)
	Reply(ctx context.Context, token string, id uuid.UUID, reply string) (*dto.Review, error)
	DeleteReview(ctx context.Context, token string, id uuid.UUID) error
	ResetSystem(ctx context.Context, token string) (*dto.ResetResponse, error)
}

var _ API = (*apiclient.Client)(nil)

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Logger *slog.Logger
	API    API
}

// Handler serves every page of the front-end.
type Handler struct {
	api    API
	logger *slog.Logger
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		api:    params.API,
		logger: params.Logger,
	}
}

func (h *Handler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Page is the data every template receives.
type Page struct {
	Title   string
	Flash   *session.Flash
	Pending *session.Confirmation
	Data    any
}

// render executes a page template. The flash is consumed by the render.
func (h *Handler) render(c echo.Context, status int, name, title string, data any) error {
	sess := sessionFrom(c)

	return c.Render(status, name, Page{
		Title:   title,
		Flash:   sess.TakeFlash(),
		Pending: sess.Pending,
		Data:    data,
	})
}

// redirect answers a form post; 303 makes the browser follow with a GET.
func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}

// flashRedirect stores a toast and redirects.
func flashRedirect(c echo.Context, kind session.FlashKind, message, to string) error {
	sessionFrom(c).SetFlash(kind, message)

	return redirect(c, to)
}

// cachedBusiness decodes the business saved at login.
func cachedBusiness(sess *session.Data) (dto.Business, bool) {
	var business dto.Business
	if len(sess.BusinessJSON) == 0 {
		return business, false
	}
	if err := json.Unmarshal(sess.BusinessJSON, &business); err != nil {
		return business, false
	}

	return business, business.ID != uuid.Nil
}

func cacheBusiness(sess *session.Data, business *dto.Business) {
	if business == nil {
		return
	}
	if raw, err := json.Marshal(business); err == nil {
		sess.BusinessJSON = raw
	}
}

// NotFoundRedirect sends unknown paths home.
func (h *Handler) NotFoundRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}
