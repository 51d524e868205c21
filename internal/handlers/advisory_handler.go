package handlers

import (
	"github.com/annadata/backend/internal/auth"
	"github.com/annadata/backend/internal/dto"
	"github.com/annadata/backend/internal/providers"
	"github.com/annadata/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdvisoryHandler serves weather and scheme data from pluggable providers.
type AdvisoryHandler struct {
	weather        providers.WeatherProvider
	schemes        providers.SchemeProvider
	profileService *services.ProfileService
}

func NewAdvisoryHandler(weather providers.WeatherProvider, schemes providers.SchemeProvider, profileService *services.ProfileService) *AdvisoryHandler {
	return &AdvisoryHandler{weather: weather, schemes: schemes, profileService: profileService}
}

// Weather returns the forecast for the caller's profile location.
func (h *AdvisoryHandler) Weather(c *fiber.Ctx) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	location := ""
	if user, err := h.profileService.Get(userID); err == nil && user != nil {
		location = user.Location
	}

	report, err := h.weather.Forecast(location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch weather",
		})
	}

	return c.JSON(report)
}

func (h *AdvisoryHandler) Schemes(c *fiber.Ctx) error {
	schemes, err := h.schemes.Schemes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch schemes",
		})
	}

	return c.JSON(fiber.Map{"schemes": schemes})
}
