package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/service"
)

// Services bundles every service the HTTP surface needs.
type Services struct {
	Landing   service.LandingService
	Gallery   service.GalleryService
	Enquiry   service.EnquiryService
	Placement service.PlacementService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/landing", GetLanding(svcs.Landing))
	api.Post("/landing", SaveLanding(svcs.Landing))

	api.Get("/gallery", ListGalleryImages(svcs.Gallery))
	api.Post("/gallery/upload", UploadGalleryImages(svcs.Gallery))
	api.Delete("/gallery/:id", DeleteGalleryImage(svcs.Gallery))

	api.Post("/enquiries", CreateEnquiry(svcs.Enquiry))
	api.Get("/enquiries", ListEnquiries(svcs.Enquiry))
	api.Delete("/enquiries/:id", DeleteEnquiry(svcs.Enquiry))

	api.Get("/placements", ListPlacements(svcs.Placement))
	api.Post("/placements", CreatePlacement(svcs.Placement))
	api.Put("/placements/:id", UpdatePlacement(svcs.Placement))
	api.Delete("/placements/:id", DeletePlacement(svcs.Placement))
}
