// Package routes wires the HTTP surface. Literal segments register before
// parameterized ones so /count and /search paths are not captured by the
// identifier routes.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/controllers"
)

type Controllers struct {
	Categories   *controllers.CategoryController
	Tags         *controllers.TagController
	Posts        *controllers.PostController
	Comments     *controllers.CommentController
	Users        *controllers.UserController
	Associations *controllers.AssociationController
	Dashboard    *controllers.DashboardController
}

// Register mounts every route group on the app.
func Register(app *fiber.App, ctl Controllers) {
	CategoryRoutes(app, ctl.Categories)
	TagRoutes(app, ctl.Tags)
	PostRoutes(app, ctl.Posts)
	CommentRoutes(app, ctl.Comments)
	UserRoutes(app, ctl.Users)
	AssociationRoutes(app, ctl.Associations)
	DashboardRoutes(app, ctl.Dashboard)
}

// CategoryRoutes sets up category CRUD plus count and id-or-name lookup
func CategoryRoutes(app *fiber.App, ctl *controllers.CategoryController) {
	category := app.Group("/categories")

	category.Post("/", ctl.CreateCategory)
	category.Get("/", ctl.GetCategories)
	category.Get("/count", ctl.CountCategories)
	category.Get("/:identifier", ctl.GetCategory)
	category.Put("/:id", ctl.UpdateCategory)
	category.Delete("/:id", ctl.DeleteCategory)
}

// TagRoutes sets up tag CRUD plus count and id-or-name lookup
func TagRoutes(app *fiber.App, ctl *controllers.TagController) {
	tag := app.Group("/tags")

	tag.Post("/", ctl.CreateTag)
	tag.Get("/", ctl.GetTags)
	tag.Get("/count", ctl.CountTags)
	tag.Get("/:identifier", ctl.GetTag)
	tag.Delete("/:id", ctl.DeleteTag)
}

// PostRoutes sets up post CRUD, search, filters, details and likes
func PostRoutes(app *fiber.App, ctl *controllers.PostController) {
	post := app.Group("/posts")

	post.Post("/", ctl.CreatePost)
	post.Get("/", ctl.GetPosts)
	post.Get("/search/by_title", ctl.SearchPostsByTitle)
	post.Get("/filter/by_tag/:tag_id", ctl.GetPostsByTag)
	post.Get("/filter/by_category/:category_id", ctl.GetPostsByCategory)
	post.Get("/:id/full_details", ctl.GetPostFullDetails)
	post.Get("/:id", ctl.GetPostByID)
	post.Put("/:id", ctl.UpdatePost)
	post.Delete("/:id", ctl.DeletePost)
	post.Post("/:id/like/:user_id", ctl.LikePost)
	post.Delete("/:id/like/:user_id", ctl.UnlikePost)
}

// CommentRoutes sets up comment CRUD and the per-post listing
func CommentRoutes(app *fiber.App, ctl *controllers.CommentController) {
	comment := app.Group("/comments")

	comment.Post("/", ctl.CreateComment)
	comment.Get("/post/:post_id", ctl.GetCommentsByPost)
	comment.Get("/:id", ctl.GetComment)
	comment.Put("/:id", ctl.UpdateComment)
	comment.Delete("/:id", ctl.DeleteComment)
}

// UserRoutes sets up user CRUD
func UserRoutes(app *fiber.App, ctl *controllers.UserController) {
	user := app.Group("/users")

	user.Post("/", ctl.CreateUser)
	user.Get("/", ctl.GetUsers)
	user.Get("/:id", ctl.GetUser)
	user.Put("/:id", ctl.UpdateUser)
	user.Delete("/:id", ctl.DeleteUser)
}

// AssociationRoutes sets up explicit post-tag association management
func AssociationRoutes(app *fiber.App, ctl *controllers.AssociationController) {
	association := app.Group("/post_tags")

	association.Post("/", ctl.CreateAssociation)
	association.Get("/", ctl.GetAssociations)
	association.Delete("/:id", ctl.DeleteAssociation)
}

// DashboardRoutes sets up the aggregate stats endpoint
func DashboardRoutes(app *fiber.App, ctl *controllers.DashboardController) {
	dashboard := app.Group("/dashboard")

	dashboard.Get("/stats", ctl.GetStats)
}
