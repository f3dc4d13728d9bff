package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fileuploader/internal/service"
)

const contentEntity = "content"

// CreateContent handles POST /api/contents. A referenced document is re-pointed
// at the new content.
//
// @Summary Create a content
// @Tags contents
// @Accept json
// @Produce json
// @Param content body contentPayload true "Content without id"
// @Success 201 {object} model.Content
// @Failure 400 {object} errorPayload
// @Router /api/contents [post]
func CreateContent(svc service.ContentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p contentPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		content, err := svc.Create(c.UserContext(), p.toModel())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.created(c, contentEntity, *content.ID)
		c.Location("/api/contents/" + strconv.FormatInt(*content.ID, 10))
		return c.Status(fiber.StatusCreated).JSON(content)
	}
}

// UpdateContent handles PUT /api/contents/:id.
//
// @Summary Replace a content
// @Tags contents
// @Accept json
// @Produce json
// @Param id path int true "Content id"
// @Param content body contentPayload true "Content"
// @Success 200 {object} model.Content
// @Failure 400 {object} errorPayload
// @Router /api/contents/{id} [put]
func UpdateContent(svc service.ContentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		var p contentPayload
		if err := bind(c, &p, true); err != nil {
			return writeServiceError(c, err)
		}
		content, err := svc.Update(c.UserContext(), id, p.toModel())
		if err != nil {
			return writeUpdateError(c, err)
		}
		alert.updated(c, contentEntity, id)
		return c.JSON(content)
	}
}

// PatchContent handles PATCH /api/contents/:id with a JSON merge patch.
//
// @Summary Partially update a content
// @Tags contents
// @Accept json
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Content id"
// @Param content body contentPatchPayload true "Fields to change, with id"
// @Success 200 {object} model.Content
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/contents/{id} [patch]
func PatchContent(svc service.ContentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if !isMergePatch(c) {
			return fiber.ErrUnsupportedMediaType
		}
		var p contentPatchPayload
		if err := bind(c, &p, false); err != nil {
			return writeServiceError(c, err)
		}
		content, err := svc.PartialUpdate(c.UserContext(), id, p.toPatch())
		if err != nil {
			return writeServiceError(c, err)
		}
		alert.updated(c, contentEntity, id)
		return c.JSON(content)
	}
}

// GetContent handles GET /api/contents/:id.
//
// @Summary Get a content
// @Tags contents
// @Produce json
// @Param id path int true "Content id"
// @Success 200 {object} model.Content
// @Failure 404 {object} errorPayload
// @Router /api/contents/{id} [get]
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		content, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(content)
	}
}

// ListContents handles GET /api/contents. filter=document-is-null keeps the
// contents that no document references.
//
// @Summary List contents
// @Tags contents
// @Produce json
// @Param filter query string false "document-is-null"
// @Success 200 {array} model.Content
// @Router /api/contents [get]
func ListContents(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contents, err := svc.List(c.UserContext(), c.Query("filter"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}
}

// DeleteContent handles DELETE /api/contents/:id.
//
// @Summary Delete a content
// @Tags contents
// @Param id path int true "Content id"
// @Success 204
// @Router /api/contents/{id} [delete]
func DeleteContent(svc service.ContentService, alert Alert) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeInvalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		alert.deleted(c, contentEntity, id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
