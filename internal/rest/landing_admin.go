package rest

import (
	"net/http"

	"landingCards/domain"

	"github.com/labstack/echo/v4"
)

type LandingAdminHandler struct {
	rankingService ConfigValidator
}

type ConfigValidator interface {
	ValidateConfig(cfg *domain.RankingConfig) error
}

func NewLandingAdminHandler(svc ConfigValidator) *LandingAdminHandler {
	return &LandingAdminHandler{rankingService: svc}
}

// POST /api/v1/admin/landing-cards/config/validate
// body: RankingConfig JSON
func (h *LandingAdminHandler) ValidateConfig(c echo.Context) error {
	var body domain.RankingConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}

	if err := h.rankingService.ValidateConfig(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"valid": false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid":          true,
		"config_version": body.ConfigVersion,
		"cards":          len(body.Cards),
	})
}
