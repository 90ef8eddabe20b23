package rest

import (
	"context"
	"errors"
	"net/http"

	"auraSync/business/catalog"
	"auraSync/domain"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var (
		genderErr *domain.InvalidGenderError
		unitErr   *domain.InvalidUnitError
	)

	switch {
	case errors.As(err, &genderErr),
		errors.As(err, &unitErr),
		errors.Is(err, domain.ErrInvalidAnalysis),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, catalog.ErrInvalidSort):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
}

// currentUserID reads the id set by the auth middleware.
func currentUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("user_id").(uint)
	return id, ok && id != 0
}
