package handlers

import (
	"errors"

	"github.com/annadata/backend/internal/auth"
	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EquipmentHandler struct {
	equipmentService *services.EquipmentService
}

func NewEquipmentHandler(equipmentService *services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService}
}

func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	eq, err := h.equipmentService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentFieldsMissing) || errors.Is(err, services.ErrInvalidListingType) ||
			errors.Is(err, services.ErrRentPriceRequired) || errors.Is(err, services.ErrSalePriceRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrNotFarmerEquipment) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create equipment listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"equipment": eq})
}

// List handles GET /api/equipment. owner_only=true (farmer_only accepted as
// an alias) selects owner mode; the default is the marketplace view.
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var equipment []dto.EquipmentResponse
	if c.Query("owner_only") == "true" || c.Query("farmer_only") == "true" {
		equipment, err = h.equipmentService.ListOwn(userID)
	} else {
		equipment, err = h.equipmentService.ListMarketplace()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch equipment",
		})
	}

	return c.JSON(dto.EquipmentListResponse{Equipment: equipment})
}
