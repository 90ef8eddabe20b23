package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"auraSync/business/analysis"
	"auraSync/business/onboarding"
	"auraSync/domain"
	"auraSync/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

const maxAnalysisBody = 64 << 10

type OnboardingService interface {
	Submit(ctx context.Context, userID uint, payload domain.AnalysisPayload) (onboarding.SubmissionResult, error)
	GetProfile(ctx context.Context, userID uint) (domain.BodyProfile, error)
}

type OnboardingHandler struct {
	onboardingService OnboardingService
	parser            *analysis.Parser
	timeout           time.Duration
}

func NewOnboardingHandler(onboardingService OnboardingService, parser *analysis.Parser) *OnboardingHandler {
	if parser == nil {
		parser = analysis.NewParser(nil)
	}
	return &OnboardingHandler{
		onboardingService: onboardingService,
		parser:            parser,
		timeout:           10 * time.Second,
	}
}

// SubmitAnalysis accepts one tagged analysis payload per request.
func (h *OnboardingHandler) SubmitAnalysis(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxAnalysisBody))
	if err != nil {
		logger.Error("Failed to read request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	payload, err := h.parser.Parse(raw)
	if err != nil {
		logger.Warn("Rejected analysis payload", "user_id", userID, "error", err.Error())
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.onboardingService.Submit(ctx, userID, payload)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *OnboardingHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.onboardingService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "onboarding profile not found"})
		}
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"profile":         profile,
		"completed_steps": profile.CompletedSteps(),
	}))
}
