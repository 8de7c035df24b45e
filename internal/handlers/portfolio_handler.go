package handlers

import (
	"github.com/gofiber/fiber/v2"

	"veridian/portfolio-api/internal/models"
)

type PortfolioHandler struct {
	portfolio *models.Portfolio
}

func NewPortfolioHandler(portfolio *models.Portfolio) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// HandleGetPortfolio handles GET /portfolio
func (h *PortfolioHandler) HandleGetPortfolio(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"owner":    h.portfolio.Owner,
		"about":    h.portfolio.About,
		"skills":   h.portfolio.Skills,
		"projects": h.portfolio.Highlight(nil),
	})
}
