package handlers

import (
	"errors"
	"log"

	"inductra/internal/models"
	"inductra/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler exposes the contact relay.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact route with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// HandleSubmit forwards a contact form submission by email.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.ContactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing contact body: %v", err)
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	err := h.service.Submit(c.UserContext(), req)
	var deliveryErr *services.DeliveryError
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrMissingContactFields):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMailerUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.As(err, &deliveryErr):
		return fiber.NewError(fiber.StatusInternalServerError, deliveryErr.Message)
	default:
		log.Printf("Contact submission failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, services.DeliveryFailedMessage)
	}
}
