package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/repository"
	"blogcms/src/services"
)

type PostController struct {
	posts    *services.PostService
	likes    *services.LikeService
	cascades *services.CascadeService
}

func NewPostController(posts *services.PostService, likes *services.LikeService, cascades *services.CascadeService) *PostController {
	return &PostController{posts: posts, likes: likes, cascades: cascades}
}

// CreatePost creates a post after checking that its category and tags exist
func (ctl *PostController) CreatePost(c *fiber.Ctx) error {
	var in models.PostInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title is required",
		})
	}
	if in.PublicationDate.IsZero() {
		in.PublicationDate = time.Now()
	}

	post, err := ctl.posts.Create(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts lists posts with pagination, optional publication-date filter and
// sorting (sort_by=likes|publication_date, order=asc|desc, default most liked
// first)
func (ctl *PostController) GetPosts(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	opts := repository.PostListOptions{
		Skip:      skip,
		Limit:     limit,
		SortBy:    c.Query("sort_by", "likes"),
		Ascending: c.Query("order") == "asc",
	}
	if raw := c.Query("published_on"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "published_on must be a YYYY-MM-DD date",
			})
		}
		opts.PublishedOn = &day
	}

	page, err := ctl.posts.List(c.Context(), opts)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// SearchPostsByTitle returns posts whose title contains the query substring
func (ctl *PostController) SearchPostsByTitle(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "title query parameter is required",
		})
	}
	posts, err := ctl.posts.SearchByTitle(c.Context(), title)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPostsByTag returns every post carrying the tag
func (ctl *PostController) GetPostsByTag(c *fiber.Ctx) error {
	tagID, err := lib.ParseID(c.Params("tag_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	posts, err := ctl.posts.ByTag(c.Context(), tagID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPostsByCategory returns every post in the category
func (ctl *PostController) GetPostsByCategory(c *fiber.Ctx) error {
	categoryID, err := lib.ParseID(c.Params("category_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	posts, err := ctl.posts.ByCategory(c.Context(), categoryID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPostByID returns a single post document
func (ctl *PostController) GetPostByID(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	post, err := ctl.posts.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPostFullDetails returns the post joined with its category, tags and
// comments
func (ctl *PostController) GetPostFullDetails(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	details, err := ctl.posts.FullDetails(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(details)
}

// UpdatePost replaces a post's fields after re-validating its references
func (ctl *PostController) UpdatePost(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var in models.PostInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	post, err := ctl.posts.Update(c.Context(), id, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost deletes a post together with its comments, associations and
// likes
func (ctl *PostController) DeletePost(c *fiber.Ctx) error {
	id, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := ctl.cascades.DeletePost(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// LikePost registers a like; a second like by the same user is a conflict
func (ctl *PostController) LikePost(c *fiber.Ctx) error {
	postID, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	userID, err := lib.ParseID(c.Params("user_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := ctl.likes.Like(c.Context(), postID, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// UnlikePost removes a like; unliking a post the user never liked is a 404
func (ctl *PostController) UnlikePost(c *fiber.Ctx) error {
	postID, err := lib.ParseID(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	userID, err := lib.ParseID(c.Params("user_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := ctl.likes.Unlike(c.Context(), postID, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}
