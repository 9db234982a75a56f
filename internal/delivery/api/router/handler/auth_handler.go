package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ratesmart/internal/delivery/api/dto"
	"ratesmart/internal/delivery/api/response"
	"ratesmart/internal/usecase"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and token refresh.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Signup registers a business and returns its first token pair.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if ok, err := bindAndValidate(c, &req, "signup"); !ok {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.FromAuthOutput(output))
}

// Login handles business login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromAuthOutput(output))
}

// AdminLogin handles moderator login.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	pair, err := h.authUC.AdminLogin(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromTokenPair(pair))
}

// Refresh exchanges a refresh token for a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshRequest
	if ok, err := bindAndValidate(c, &req, "refresh token"); !ok {
		return err
	}

	pair, err := h.authUC.Refresh(c.Request().Context(), req.Refresh)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.FromTokenPair(pair))
}
