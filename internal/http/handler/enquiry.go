package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"siteapi/internal/model"
	"siteapi/internal/service"
)

// CreateEnquiry accepts a public contact-form submission.
// @Summary Submit an enquiry
// @Accept json
// @Produce json
// @Success 201 {object} model.Enquiry
// @Router /api/enquiries [post]
func CreateEnquiry(svc service.EnquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e model.Enquiry
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		created, err := svc.Create(c.UserContext(), &e)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListEnquiries returns all enquiries, newest first.
// @Summary List enquiries
// @Produce json
// @Success 200 {array} model.Enquiry
// @Router /api/enquiries [get]
func ListEnquiries(svc service.EnquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// DeleteEnquiry removes one enquiry by id.
// @Summary Delete an enquiry
// @Param id path string true "enquiry id"
// @Success 204
// @Router /api/enquiries/{id} [delete]
func DeleteEnquiry(svc service.EnquiryService) fiber.Handler {
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
