package handler

import (
	"github.com/gofiber/fiber/v2"

	"siteapi/internal/model"
	"siteapi/internal/service"
)

// saveLandingResponse matches the shape the admin panel expects from a save.
type saveLandingResponse struct {
	Success bool           `json:"success"`
	Landing *model.Landing `json:"landing"`
}

// GetLanding serves the landing-content document.
// @Summary Get landing content
// @Produce json
// @Success 200 {object} model.Landing
// @Router /api/landing [get]
func GetLanding(svc service.LandingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l, err := svc.Get(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(l)
	}
}

// SaveLanding upserts the landing-content document from an admin save.
// Sections present in the payload replace the stored sections wholesale;
// omitted sections are left untouched.
// @Summary Save landing content
// @Accept json
// @Produce json
// @Success 200 {object} saveLandingResponse
// @Router /api/landing [post]
func SaveLanding(svc service.LandingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.LandingUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		l, err := svc.Save(c.UserContext(), &upd)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(saveLandingResponse{Success: true, Landing: l})
	}
}
