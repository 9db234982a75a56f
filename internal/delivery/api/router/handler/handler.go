// Package handler contains the HTTP handlers of the api delivery.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ratesmart/internal/delivery/api/response"
	deliverycontext "ratesmart/internal/delivery/context"
	"ratesmart/internal/usecase"
)

// bindAndValidate decodes the body into req and runs the echo validator.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any, what string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid "+what+" input")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Validation failed", err.Error())
	}

	return true, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// queryID parses an optional uuid query parameter. Absent means uuid.Nil.
func queryID(c echo.Context, name string) (uuid.UUID, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)

	return id, err == nil
}

// caller returns the authenticated principal or the anonymous one.
func caller(c echo.Context) usecase.Principal {
	principal, _ := deliverycontext.GetPrincipal(c)

	return principal
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
