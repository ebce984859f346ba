package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"landingCards/business/ranking"
	"landingCards/domain"
	"landingCards/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	LandingHandler struct {
		validate       *validator.Validate
		rankingService RankingService
	}

	RankingService interface {
		Evaluate(ctx context.Context, cfg *domain.RankingConfig, req *domain.RankingRequest) (*domain.RankingResponse, error)
	}

	// EvaluateRequest carries the two documents the operator console edits:
	// the configuration and the request snapshot.
	EvaluateRequest struct {
		Config  *domain.RankingConfig  `json:"config" validate:"required"`
		Request *domain.RankingRequest `json:"request" validate:"required"`
	}
)

type ResponseError struct {
	Message string `json:"message"`
}

func NewLandingHandler(svc RankingService) *LandingHandler {
	return &LandingHandler{
		validate:       validator.New(),
		rankingService: svc,
	}
}

// POST /api/v1/landing-cards/evaluate
func (h *LandingHandler) Evaluate(c echo.Context) error {
	start := time.Now()

	var body EvaluateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	resp, err := h.rankingService.Evaluate(c.Request().Context(), body.Config, body.Request)
	if err != nil {
		if errors.Is(err, ranking.ErrInvalidConfig) || errors.Is(err, ranking.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.EvaluateLatency.Observe(time.Since(start).Seconds())
	metrics.EvaluateRequests.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}
