package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/services"
)

type AssociationController struct {
	associations *services.AssociationService
}

func NewAssociationController(associations *services.AssociationService) *AssociationController {
	return &AssociationController{associations: associations}
}

// CreateAssociation links a post to a tag, updating the post's embedded tag
// set as well
func (ctl *AssociationController) CreateAssociation(c *fiber.Ctx) error {
	var in models.AssociationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	postID, err := lib.ParseID(in.PostID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	tagID, err := lib.ParseID(in.TagID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	association, err := ctl.associations.Associate(c.Context(), postID, tagID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(association)
}

// GetAssociations returns a paginated list of post-tag associations
func (ctl *AssociationController) GetAssociations(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	page, err := ctl.associations.List(c.Context(), skip, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// DeleteAssociation unlinks the pair and pulls the tag from the post
func (ctl *AssociationController) DeleteAssociation(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.associations.Disassociate(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Association deleted successfully",
	})
}
