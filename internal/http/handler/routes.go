package handler

import (
	"github.com/gofiber/fiber/v2"

	"fileuploader/internal/service"
)

// Services bundles the use cases the routes call into.
type Services struct {
	Cars      service.CarService
	Documents service.DocumentService
	Contents  service.ContentService
}

// RegisterRoutes attaches the health probes and the /api resources to app.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services, alert Alert) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	cars := api.Group("/cars")
	cars.Post("/", CreateCar(svc.Cars, alert))
	cars.Get("/", ListCars(svc.Cars))
	cars.Get("/:id", GetCar(svc.Cars))
	cars.Put("/:id", UpdateCar(svc.Cars, alert))
	cars.Patch("/:id", PatchCar(svc.Cars, alert))
	cars.Delete("/:id", DeleteCar(svc.Cars, alert))

	documents := api.Group("/documents")
	documents.Post("/", CreateDocument(svc.Documents, alert))
	documents.Get("/", ListDocuments(svc.Documents))
	documents.Get("/:id", GetDocument(svc.Documents))
	documents.Put("/:id", UpdateDocument(svc.Documents, alert))
	documents.Patch("/:id", PatchDocument(svc.Documents, alert))
	documents.Delete("/:id", DeleteDocument(svc.Documents, alert))

	contents := api.Group("/contents")
	contents.Post("/", CreateContent(svc.Contents, alert))
	contents.Get("/", ListContents(svc.Contents))
	contents.Get("/:id", GetContent(svc.Contents))
	contents.Put("/:id", UpdateContent(svc.Contents, alert))
	contents.Patch("/:id", PatchContent(svc.Contents, alert))
	contents.Delete("/:id", DeleteContent(svc.Contents, alert))
}
