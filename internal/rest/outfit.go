package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"auraSync/business/catalog"
	"auraSync/domain"
	"auraSync/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OutfitService interface {
	ListOutfits(ctx context.Context, gender string, q catalog.ListQuery) (domain.OutfitPage, error)
	GetOutfitByID(ctx context.Context, id uint64) (domain.Outfit, error)
	CreateOutfit(ctx context.Context, outfit *domain.Outfit) (*domain.Outfit, error)
	DeleteOutfit(ctx context.Context, id uint64) error
}

type OutfitHandler struct {
	outfitService OutfitService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewOutfitHandler(outfitService OutfitService) *OutfitHandler {
	return &OutfitHandler{
		outfitService: outfitService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateOutfitRequest struct {
	Gender      string   `json:"gender" validate:"required,oneof=female male"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Price       float64  `json:"price" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	BodyShapes  []string `json:"body_shapes"`
	Position    int      `json:"position" validate:"gte=0"`
}

func (h *OutfitHandler) ListOutfits(c echo.Context) error {
	q := catalog.ListQuery{
		Sort:      c.QueryParam("sort"),
		BodyShape: c.QueryParam("body_shape"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"page", &q.Page},
		{"page_size", &q.PageSize},
	}
	for _, p := range ints {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid " + p.name})
		}
		*p.dst = v
	}

	if raw := c.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid seed"})
		}
		q.Seed = seed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.outfitService.ListOutfits(ctx, c.QueryParam("gender"), q)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *OutfitHandler) GetOutfitByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid outfit id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfit, err := h.outfitService.GetOutfitByID(ctx, id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfit))
}

func (h *OutfitHandler) CreateOutfit(c echo.Context) error {
	var req CreateOutfitRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate outfit request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	outfit, err := h.outfitService.CreateOutfit(ctx, &domain.Outfit{
		Gender:      req.Gender,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Rating:      req.Rating,
		BodyShapes:  req.BodyShapes,
		Position:    req.Position,
	})
	if err != nil {
		logger.Error("Failed to create outfit", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(outfit))
}

func (h *OutfitHandler) DeleteOutfit(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid outfit id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.outfitService.DeleteOutfit(ctx, id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Outfit deleted successfully"))
}
