package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"auraSync/domain"
	"auraSync/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PointsHandler struct {
		pointsService PointsService
		validate      *validator.Validate
		timeout       time.Duration
	}

	PointsService interface {
		Spend(ctx context.Context, userID uint, amount int64, reason string) (domain.PointsTransaction, error)
		Balance(ctx context.Context, userID uint) (int64, error)
		History(ctx context.Context, userID uint, limit int) ([]domain.PointsTransaction, error)
	}

	SpendInput struct {
		Amount int64  `json:"amount" validate:"required,gt=0"`
		Reason string `json:"reason" validate:"required"`
	}
)

func NewPointsHandler(pointsService PointsService) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
		validate:      validator.New(),
		timeout:       10 * time.Second,
	}
}

func (h *PointsHandler) GetBalance(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	balance, err := h.pointsService.Balance(ctx, userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"user_id": userID,
		"balance": balance,
	}))
}

func (h *PointsHandler) GetHistory(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.pointsService.History(ctx, userID, limit)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(history))
}

func (h *PointsHandler) Spend(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	var request SpendInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate spend request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tx, err := h.pointsService.Spend(ctx, userID, request.Amount, request.Reason)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tx))
}
