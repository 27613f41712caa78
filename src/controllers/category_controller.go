package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/services"
)

type CategoryController struct {
	categories *services.CategoryService
	cascades   *services.CascadeService
}

func NewCategoryController(categories *services.CategoryService, cascades *services.CascadeService) *CategoryController {
	return &CategoryController{categories: categories, cascades: cascades}
}

// CreateCategory creates a new category from the request body
func (ctl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var in models.CategoryInput
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

	category, err := ctl.categories.Create(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetCategories returns a paginated list of categories
func (ctl *CategoryController) GetCategories(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	page, err := ctl.categories.List(c.Context(), skip, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountCategories returns the total number of categories
func (ctl *CategoryController) CountCategories(c *fiber.Ctx) error {
	total, err := ctl.categories.Count(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"total": total})
}

// GetCategory resolves the path segment as an object id when it parses as
// one, otherwise as an exact case-insensitive name
func (ctl *CategoryController) GetCategory(c *fiber.Ctx) error {
	category, err := ctl.categories.GetByIdentifier(c.Context(), c.Params("identifier"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// UpdateCategory replaces the name and description of a category
func (ctl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var in models.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	category, err := ctl.categories.Update(c.Context(), id, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory deletes a category and uncategorizes its posts
func (ctl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.cascades.DeleteCategory(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
