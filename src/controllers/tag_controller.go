package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/services"
)

type TagController struct {
	tags     *services.TagService
	cascades *services.CascadeService
}

func NewTagController(tags *services.TagService, cascades *services.CascadeService) *TagController {
	return &TagController{tags: tags, cascades: cascades}
}

// CreateTag creates a new tag; duplicate names are rejected
func (ctl *TagController) CreateTag(c *fiber.Ctx) error {
	var in models.TagInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
		})
	}

	tag, err := ctl.tags.Create(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTags returns a paginated list of tags
func (ctl *TagController) GetTags(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	page, err := ctl.tags.List(c.Context(), skip, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountTags returns the total number of tags
func (ctl *TagController) CountTags(c *fiber.Ctx) error {
	total, err := ctl.tags.Count(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"total": total})
}

// GetTag resolves the path segment as an object id or as an exact name
func (ctl *TagController) GetTag(c *fiber.Ctx) error {
	tag, err := ctl.tags.GetByIdentifier(c.Context(), c.Params("identifier"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

// DeleteTag deletes a tag, detaching it from every post that carries it
func (ctl *TagController) DeleteTag(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.cascades.DeleteTag(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Tag deleted successfully",
	})
}
