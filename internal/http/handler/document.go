package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fileuploader/internal/service"
)

const documentEntity = "document"

// CreateDocument handles POST /api/documents.
//
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body documentPayload true "Document without id"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Router /api/documents [post]
func CreateDocument(svc service.DocumentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p documentPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.Create(c.UserContext(), p.toModel())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.created(c, documentEntity, *doc.ID)
		c.Location("/api/documents/" + strconv.FormatInt(*doc.ID, 10))
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// UpdateDocument handles PUT /api/documents/:id.
//
// @Summary Replace a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path int true "Document id"
// @Param document body documentPayload true "Document"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Router /api/documents/{id} [put]
func UpdateDocument(svc service.DocumentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		var p documentPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.Update(c.UserContext(), id, p.toModel())
		if err != nil {
			return writeUpdateError(c, err)
		}
		alert.updated(c, documentEntity, id)
		return c.JSON(doc)
	}
}

// PatchDocument handles PATCH /api/documents/:id with a JSON merge patch.
//
// @Summary Partially update a document
// @Tags documents
// @Accept json
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Document id"
// @Param document body documentPatchPayload true "Fields to change, with id"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/documents/{id} [patch]
func PatchDocument(svc service.DocumentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if !isMergePatch(c) {
			return fiber.ErrUnsupportedMediaType
		}
		var p documentPatchPayload
		if err := bind(c, &p, false); err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.PartialUpdate(c.UserContext(), id, p.toPatch())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.updated(c, documentEntity, id)
		return c.JSON(doc)
	}
}

// GetDocument handles GET /api/documents/:id.
//
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /api/documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListDocuments handles GET /api/documents.
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} model.Document
// @Router /api/documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// DeleteDocument handles DELETE /api/documents/:id.
//
// @Summary Delete a document
// @Tags documents
// @Param id path int true "Document id"
// @Success 204
// @Router /api/documents/{id} [delete]
func DeleteDocument(svc service.DocumentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		alert.deleted(c, documentEntity, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
