package handlers

import (
	"errors"

	"github.com/annadata/backend/internal/auth"
	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CropHandler struct {
	cropService   *services.CropService
	marketService *services.MarketService
}

func NewCropHandler(cropService *services.CropService, marketService *services.MarketService) *CropHandler {
	return &CropHandler{cropService: cropService, marketService: marketService}
}

func (h *CropHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateCropRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	crop, err := h.cropService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCropNameRequired) || errors.Is(err, services.ErrInvalidQuantity) ||
			errors.Is(err, services.ErrInvalidPrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrNotFarmerCrop) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create crop listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"crop": crop})
}

// List handles GET /api/crops. farmer_only=true (owner_only accepted as an
// alias) selects owner mode; the default is the marketplace view with mandi
// comparisons attached.
func (h *CropHandler) List(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	ownerMode := c.Query("farmer_only") == "true" || c.Query("owner_only") == "true"

	var crops []dto.CropResponse
	if ownerMode {
		crops, err = h.cropService.ListOwn(userID)
	} else {
		crops, err = h.cropService.ListMarketplace()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch crops",
		})
	}

	if !ownerMode {
		for i := range crops {
			crops[i].Comparison = h.marketService.Compare(crops[i].CropName, crops[i].PricePerKg)
		}
	}

	return c.JSON(dto.CropsListResponse{Crops: crops})
}
