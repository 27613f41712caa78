package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"blogcms/src/cache"
	"blogcms/src/config"
	"blogcms/src/controllers"
	"blogcms/src/lib"
	"blogcms/src/middleware"
	"blogcms/src/repository"
	"blogcms/src/routes"
	"blogcms/src/services"
)

func main() {
	godotenv.Load()
	cfg := config.LoadConfig()
	lib.InitLogger(cfg.LogLevel)

	client, db, err := lib.ConnectDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	if err := lib.EnsureIndexes(context.Background(), db); err != nil {
		slog.Error("index creation failed", "error", err)
		os.Exit(1)
	}

	cache.InitRedis(cfg.RedisURL)
	defer cache.Close()

	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	associationRepo := repository.NewAssociationRepository(db)

	categorySvc := services.NewCategoryService(categoryRepo)
	tagSvc := services.NewTagService(tagRepo)
	postSvc := services.NewPostService(postRepo, categoryRepo, tagRepo, commentRepo)
	commentSvc := services.NewCommentService(commentRepo, postRepo, userRepo)
	userSvc := services.NewUserService(userRepo)
	likeSvc := services.NewLikeService(likeRepo, postRepo, userRepo)
	associationSvc := services.NewAssociationService(associationRepo, postRepo, tagRepo)
	cascadeSvc := services.NewCascadeService(categoryRepo, tagRepo, postRepo, commentRepo, userRepo, likeRepo, associationRepo)
	dashboardSvc := services.NewDashboardService(postRepo, commentRepo)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	routes.Register(app, routes.Controllers{
		Categories:   controllers.NewCategoryController(categorySvc, cascadeSvc),
		Tags:         controllers.NewTagController(tagSvc, cascadeSvc),
		Posts:        controllers.NewPostController(postSvc, likeSvc, cascadeSvc),
		Comments:     controllers.NewCommentController(commentSvc),
		Users:        controllers.NewUserController(userSvc, cascadeSvc),
		Associations: controllers.NewAssociationController(associationSvc),
		Dashboard:    controllers.NewDashboardController(dashboardSvc),
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
