package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"siteapi/internal/model"
	"siteapi/internal/service"
)

// ListPlacements returns placement records, newest first.
// ?active=true restricts the list to active records (the public view).
// @Summary List placements
// @Produce json
// @Success 200 {array} model.Placement
// @Router /api/placements [get]
func ListPlacements(svc service.PlacementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		onlyActive := c.Query("active") == "true"
		items, err := svc.List(c.UserContext(), onlyActive)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// CreatePlacement stores a new placement record.
// @Summary Create a placement
// @Accept json
// @Produce json
// @Success 201 {object} model.Placement
// @Router /api/placements [post]
func CreatePlacement(svc service.PlacementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.Placement
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		created, err := svc.Create(c.UserContext(), &p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdatePlacement fully replaces a placement's fields.
// @Summary Update a placement
// @Accept json
// @Produce json
// @Param id path string true "placement id"
// @Success 200 {object} model.Placement
// @Router /api/placements/{id} [put]
func UpdatePlacement(svc service.PlacementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var p model.Placement
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		p.ID = id

		updated, err := svc.Update(c.UserContext(), &p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeletePlacement removes one placement by id.
// @Summary Delete a placement
// @Param id path string true "placement id"
// @Success 204
// @Router /api/placements/{id} [delete]
func DeletePlacement(svc service.PlacementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
