package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/services"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// CreateComment creates a comment; its post and author must both exist
func (ctl *CommentController) CreateComment(c *fiber.Ctx) error {
	var in models.CommentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Content is required",
		})
	}

	postID, err := lib.ParseID(in.PostID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	userID, err := lib.ParseID(in.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comment, err := ctl.comments.Create(c.Context(), postID, userID, in.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComment returns a single comment
func (ctl *CommentController) GetComment(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	comment, err := ctl.comments.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// GetCommentsByPost returns all comments on a post
func (ctl *CommentController) GetCommentsByPost(c *fiber.Ctx) error {
	postID, err := lib.ParseID(c.Params("post_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	comments, err := ctl.comments.ByPost(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// UpdateComment replaces a comment's content
func (ctl *CommentController) UpdateComment(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Content is required",
		})
	}

	comment, err := ctl.comments.UpdateContent(c.Context(), id, body.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment deletes a single comment
func (ctl *CommentController) DeleteComment(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.comments.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}
