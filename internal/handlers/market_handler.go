package handlers

import (
	"errors"

	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MarketHandler struct {
	marketService *services.MarketService
}

func NewMarketHandler(marketService *services.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

func (h *MarketHandler) ListMandiPrices(c *fiber.Ctx) error {
	prices, err := h.marketService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch mandi prices",
		})
	}

	return c.JSON(fiber.Map{"prices": prices})
}

// SetMandiPrice is admin-only; the route group enforces that.
func (h *MarketHandler) SetMandiPrice(c *fiber.Ctx) error {
	crop := c.Params("crop")

	var req dto.SetMandiPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	price, err := h.marketService.Set(crop, req.PricePerKg)
	if err != nil {
		if errors.Is(err, services.ErrCropNameRequired) || errors.Is(err, services.ErrInvalidMandiPrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to set mandi price",
		})
	}

	return c.JSON(fiber.Map{"price": price})
}
