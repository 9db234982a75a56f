// Package apiclient is the web front-end's typed client for the REST api.
package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"ratesmart/config"
	"ratesmart/internal/delivery/api/dto"
	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/errors"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the api.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}

	return e.Message
}

// IsUnauthorized reports whether err is an api 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := errors.AsType[*APIError](err)

	return ok && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is an api 404.
func IsNotFound(err error) bool {
	apiErr, ok := errors.AsType[*APIError](err)

	return ok && apiErr.Status == http.StatusNotFound
}

// Message returns the api's message for err, or fallback for transport
// failures and bodies without one. Details are left to err.Error() for logs.
func Message(err error, fallback string) string {
	if apiErr, ok := errors.AsType[*APIError](err); ok && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Message string `json:"message"`
}

// Client talks to the api over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a client for the api at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			// Pages and the api calls they trigger share one request id.
			if id := deliverycontext.GetRequestIDFromContext(req.Context()); id != "" {
				req.SetHeader(deliverycontext.HeaderXRequestID, id)
			}

			return nil
		})

	return &Client{http: rc}
}

// NewFromConfig is the fx constructor.
func NewFromConfig(cfg *config.Config) *Client {
	return New(cfg.Web.APIBaseURL, cfg.Web.ClientTimeout)
}

// call performs the request and unwraps the success envelope into T.
func call[T any](ctx context.Context, c *Client, method, path, token string, body any) (T, error) {
	var (
		result envelope[T]
		zero   T
	)

	req := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&errorEnvelope{})
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, errors.Wrapf(err, "%s %s", method, path)
	}
	if resp.IsError() {
		return zero, toAPIError(resp)
	}

	return result.Data, nil
}

// exec is call for endpoints answering 204.
func exec(ctx context.Context, c *Client, method, path, token string) error {
	_, err := call[struct{}](ctx, c, method, path, token, nil)

	return err
}

func toAPIError(resp *resty.Response) error {
	apiErr := &APIError{Status: resp.StatusCode()}

	if body, ok := resp.Error().(*errorEnvelope); ok && body != nil {
		switch {
		case body.Error != nil:
			apiErr.Code = body.Error.Code
			apiErr.Message = body.Error.Message
			if details, ok := body.Error.Details.(string); ok {
				apiErr.Details = details
			}
		case body.Message != "":
			apiErr.Message = body.Message
		}
	}

	return apiErr
}

func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](ctx, c, http.MethodPost, "/api/signup", "", req)
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](ctx, c, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: email, Password: password})
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*dto.Tokens, error) {
	return call[*dto.Tokens](ctx, c, http.MethodPost, "/api/admin/login", "", dto.LoginRequest{Email: email, Password: password})
}

func (c *Client) Me(ctx context.Context, token string) (*dto.Business, error) {
	return call[*dto.Business](ctx, c, http.MethodGet, "/api/businesses/me", token, nil)
}

func (c *Client) ListBusinesses(ctx context.Context) ([]dto.Business, error) {
	return call[[]dto.Business](ctx, c, http.MethodGet, "/api/businesses", "", nil)
}

func (c *Client) GetBusiness(ctx context.Context, id uuid.UUID) (*dto.Business, error) {
	return call[*dto.Business](ctx, c, http.MethodGet, "/api/businesses/"+id.String(), "", nil)
}

func (c *Client) UpdateBusiness(ctx context.Context, token string, id uuid.UUID, req dto.UpdateBusinessRequest) (*dto.Business, error) {
	return call[*dto.Business](ctx, c, http.MethodPut, "/api/businesses/"+id.String(), token, req)
}

func (c *Client) DeleteBusiness(ctx context.Context, token string, id uuid.UUID) error {
	return exec(ctx, c, http.MethodDelete, "/api/businesses/"+id.String(), token)
}

// BusinessQR returns the PNG review QR code.
func (c *Client) BusinessQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	path := "/api/businesses/" + id.String() + "/qr"
	resp, err := c.http.R().SetContext(ctx).SetError(&errorEnvelope{}).Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	return resp.Body(), nil
}

// ListProducts lists all products, or one business's when businessID is set.
func (c *Client) ListProducts(ctx context.Context, businessID uuid.UUID) ([]dto.Product, error) {
	return call[[]dto.Product](ctx, c, http.MethodGet, withFilter("/api/products", "business_id", businessID), "", nil)
}

func (c *Client) CreateProduct(ctx context.Context, token string, req dto.CreateProductRequest) (*dto.Product, error) {
	return call[*dto.Product](ctx, c, http.MethodPost, "/api/products", token, req)
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id uuid.UUID) error {
	return exec(ctx, c, http.MethodDelete, "/api/products/"+id.String(), token)
}

// ListReviews lists all reviews, or one business's when businessID is set.
func (c *Client) ListReviews(ctx context.Context, businessID uuid.UUID) ([]dto.Review, error) {
	return call[[]dto.Review](ctx, c, http.MethodGet, withFilter("/api/reviews", "business_id", businessID), "", nil)
}

func (c *Client) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*dto.Review, error) {
	return call[*dto.Review](ctx, c, http.MethodPost, "/api/reviews", "", req)
}

// Reply sets the business reply on a review.
func (c *Client) Reply(ctx context.Context, token string, id uuid.UUID, reply string) (*dto.Review, error) {
	return call[*dto.Review](ctx, c, http.MethodPut, "/api/reviews/"+id.String(), token, dto.UpdateReviewRequest{Reply: &reply})
}

func (c *Client) DeleteReview(ctx context.Context, token string, id uuid.UUID) error {
	return exec(ctx, c, http.MethodDelete, "/api/reviews/"+id.String(), token)
}

func (c *Client) ResetSystem(ctx context.Context, token string) (*dto.ResetResponse, error) {
	return call[*dto.ResetResponse](ctx, c, http.MethodPost, "/api/admin/reset", token, nil)
}

func withFilter(path, key string, id uuid.UUID) string {
	if id == uuid.Nil {
		return path
	}

	return fmt.Sprintf("%s?%s=%s", path, key, url.QueryEscape(id.String()))
}
