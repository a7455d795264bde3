package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"siteapi/internal/service"
)

// ListGalleryImages returns all gallery images, newest first.
// @Summary List gallery images
// @Produce json
// @Success 200 {array} model.Image
// @Router /api/gallery [get]
func ListGalleryImages(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		imgs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(imgs)
	}
}

// UploadGalleryImages accepts a multipart batch under the "images" field and
// stores each file plus its metadata record, all-or-nothing.
// @Summary Upload gallery images
// @Accept multipart/form-data
// @Produce json
// @Success 201 {array} model.Image
// @Router /api/gallery/upload [post]
func UploadGalleryImages(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "multipart form with images is required")
		}
		headers := form.File["images"]
		if len(headers) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "no files uploaded")
		}

		files := make([]service.UploadFile, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file "+fh.Filename)
			}
			defer f.Close()

			ct := fh.Header.Get("Content-Type")
			files = append(files, service.UploadFile{
				Reader:      f,
				Filename:    fh.Filename,
				ContentType: ct,
				Size:        fh.Size,
			})
		}

		imgs, err := svc.Upload(c.UserContext(), files)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(imgs)
	}
}

// DeleteGalleryImage removes one image by record id.
// @Summary Delete a gallery image
// @Produce json
// @Param id path string true "image record id"
// @Success 200 {object} map[string]string
// @Router /api/gallery/{id} [delete]
func DeleteGalleryImage(svc service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Image deleted successfully"})
	}
}
