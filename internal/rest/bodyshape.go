package rest

import (
	"context"
	"net/http"
	"time"

	"auraSync/business/bodyshape"
	"auraSync/domain"
	"auraSync/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type BodyShapeService interface {
	Classify(ctx context.Context, req bodyshape.ClassifyRequest) (domain.BodyShapeClassification, error)
	Archetypes(ctx context.Context, gender string) ([]domain.BodyShapeArchetype, error)
}

type BodyShapeHandler struct {
	bodyShapeService BodyShapeService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewBodyShapeHandler(bodyShapeService BodyShapeService) *BodyShapeHandler {
	return &BodyShapeHandler{
		bodyShapeService: bodyShapeService,
		validator:        validator.New(),
		timeout:          10 * time.Second,
	}
}

// ClassifyRequest is the manual-entry form. Measurement values may be
// numbers or numeric strings; blanks are ignored.
type ClassifyRequest struct {
	Gender       string         `json:"gender" validate:"required"`
	Unit         string         `json:"unit"`
	Measurements map[string]any `json:"measurements"`
}

func (h *BodyShapeHandler) Classify(c echo.Context) error {
	var req ClassifyRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate classify request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.bodyShapeService.Classify(ctx, bodyshape.ClassifyRequest{
		Gender:       req.Gender,
		Unit:         req.Unit,
		Measurements: req.Measurements,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *BodyShapeHandler) Archetypes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	archetypes, err := h.bodyShapeService.Archetypes(ctx, c.QueryParam("gender"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(archetypes))
}
