package handlers

import (
	"errors"

	"github.com/annadata/backend/internal/auth"
	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TradeHandler struct {
	tradeService *services.TradeService
}

func NewTradeHandler(tradeService *services.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// PurchaseCrop handles POST /api/crops/:id/purchase.
func (h *TradeHandler) PurchaseCrop(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	cropID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid crop ID",
		})
	}

	req := dto.PurchaseCropRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid request body",
			})
		}
	}

	sale, err := h.tradeService.PurchaseCrop(userID, cropID, &req)
	if err != nil {
		return h.tradeError(c, err, "Failed to purchase crop")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": sale})
}

// PurchaseEquipment handles POST /api/equipment/:id/purchase.
func (h *TradeHandler) PurchaseEquipment(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	equipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid equipment ID",
		})
	}

	sale, err := h.tradeService.PurchaseEquipment(userID, equipmentID)
	if err != nil {
		return h.tradeError(c, err, "Failed to purchase equipment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": sale})
}

// RentEquipment handles POST /api/equipment/:id/rentals.
func (h *TradeHandler) RentEquipment(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	equipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid equipment ID",
		})
	}

	var req dto.RentEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	rental, err := h.tradeService.RentEquipment(userID, equipmentID, &req)
	if err != nil {
		return h.tradeError(c, err, "Failed to rent equipment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rental": rental})
}

func (h *TradeHandler) tradeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotBuyer), errors.Is(err, services.ErrOwnListing):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrCropNotFound), errors.Is(err, services.ErrEquipmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrCropSold), errors.Is(err, services.ErrEquipmentTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotRentable), errors.Is(err, services.ErrNotForSale),
		errors.Is(err, services.ErrInvalidRentDays), errors.Is(err, services.ErrInvalidBuyAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
