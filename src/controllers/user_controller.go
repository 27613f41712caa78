package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/services"
)

type UserController struct {
	users    *services.UserService
	cascades *services.CascadeService
}

func NewUserController(users *services.UserService, cascades *services.CascadeService) *UserController {
	return &UserController{users: users, cascades: cascades}
}

// CreateUser registers a user; email and username must be unused
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var in models.UserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username, email and password are required",
		})
	}

	user, err := ctl.users.Create(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers returns a paginated list of users
func (ctl *UserController) GetUsers(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	page, err := ctl.users.List(c.Context(), skip, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// GetUser returns a single user; the password hash never serializes
func (ctl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	user, err := ctl.users.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser applies a partial update; a new password is re-hashed
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := ctl.users.Update(c.Context(), id, upd)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser deletes a user along with their comments and likes
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.cascades.DeleteUser(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
