package handlers

import (
	"github.com/gofiber/fiber/v2"

	"veridian/portfolio-api/internal/models"
	"veridian/portfolio-api/internal/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// HandleSubmit handles POST /contact
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var form models.ContactForm

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ContactResult{
			Success: false,
			Error:   services.MsgInvalidContactData,
		})
	}

	result := h.contactService.Submit(c.UserContext(), form)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	return c.JSON(result)
}
