// Command seed populates the blog database with demo data for development.
// The generated data respects the store's cross-collection invariants: every
// tag in a post's tags_id set has a matching association record, and every
// post's likes counter equals its number of like records.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"blogcms/src/config"
	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var categoryNames = []string{
	"Tech", "Science", "Travel", "Food", "Music",
	"Gaming", "Books", "Fitness", "Finance", "Art",
}

var tagNames = []string{
	"python", "golang", "databases", "web", "cloud",
	"tutorial", "opinion", "review", "news", "deep-dive",
	"beginner", "advanced", "performance", "security", "design",
}

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 50, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Drop existing collections before seeding")
	flag.Parse()

	godotenv.Load()
	cfg := config.LoadConfig()

	client, db, err := lib.ConnectDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	ctx := context.Background()
	if *shouldClean {
		if err := clean(ctx, db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := lib.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Index creation failed: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := seedAll(ctx, db, r, *numUsers, *numPosts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users and %d posts into %s", *numUsers, *numPosts, cfg.DBName)
}

func clean(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{"posts", "categories", "tags", "comments", "users", "post_likes", "post_tags"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	return nil
}

func seedAll(ctx context.Context, db *mongo.Database, r *rand.Rand, numUsers, numPosts int) error {
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	associationRepo := repository.NewAssociationRepository(db)

	var categories []models.Category
	for _, name := range categoryNames {
		category, err := categoryRepo.Insert(ctx, models.CategoryInput{
			Name:        name,
			Description: gofakeit.Sentence(8),
		})
		if err != nil {
			return err
		}
		categories = append(categories, *category)
	}

	var tags []models.Tag
	for _, name := range tagNames {
		tag, err := tagRepo.Insert(ctx, models.TagInput{Name: name})
		if err != nil {
			return err
		}
		tags = append(tags, *tag)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var users []models.User
	for i := 0; i < numUsers; i++ {
		user, err := userRepo.Insert(ctx,
			fmt.Sprintf("%s%d", gofakeit.Username(), i),
			fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			string(hash),
		)
		if err != nil {
			return err
		}
		users = append(users, *user)
	}

	for i := 0; i < numPosts; i++ {
		in := models.PostInput{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(2, 4, 8, "\n"),
			Author: models.AuthorProfile{
				Name: gofakeit.Name(),
				Bio:  gofakeit.Sentence(10),
			},
			PublicationDate: time.Now().AddDate(0, 0, -r.Intn(90)),
		}
		// roughly one post in six stays uncategorized
		if r.Intn(6) != 0 {
			in.CategoryID = &categories[r.Intn(len(categories))].Id
		}

		post, err := postRepo.Insert(ctx, in)
		if err != nil {
			return err
		}

		// attach tags through association records plus the embedded set,
		// the same double write the association service performs
		for _, tag := range pickTags(r, tags) {
			if _, err := associationRepo.Insert(ctx, post.Id, tag.Id); err != nil {
				return err
			}
			if err := postRepo.AddTag(ctx, post.Id, tag.Id); err != nil {
				return err
			}
		}

		for c := r.Intn(5); c > 0; c-- {
			commenter := users[r.Intn(len(users))]
			if _, err := commentRepo.Insert(ctx, post.Id, commenter.Id, gofakeit.Sentence(12)); err != nil {
				return err
			}
		}

		// distinct likers keep the unique (post_id, user_id) index happy;
		// one counter increment per inserted like record
		for _, liker := range pickUsers(r, users) {
			if _, err := likeRepo.Insert(ctx, post.Id, liker.Id); err != nil {
				return err
			}
			if _, err := postRepo.IncLikes(ctx, post.Id, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func pickTags(r *rand.Rand, tags []models.Tag) []models.Tag {
	n := r.Intn(4)
	shuffled := append([]models.Tag{}, tags...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}

func pickUsers(r *rand.Rand, users []models.User) []models.User {
	n := r.Intn(len(users) + 1)
	shuffled := append([]models.User{}, users...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}
