package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogcms/src/controllers"
	"blogcms/src/routes"
	"blogcms/src/services"
	"blogcms/src/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp() *fiber.App {
	store := testutil.NewMemStore()

	categorySvc := services.NewCategoryService(store.Categories())
	tagSvc := services.NewTagService(store.Tags())
	postSvc := services.NewPostService(store.Posts(), store.Categories(), store.Tags(), store.Comments())
	commentSvc := services.NewCommentService(store.Comments(), store.Posts(), store.Users())
	userSvc := services.NewUserService(store.Users())
	likeSvc := services.NewLikeService(store.Likes(), store.Posts(), store.Users())
	associationSvc := services.NewAssociationService(store.Associations(), store.Posts(), store.Tags())
	cascadeSvc := services.NewCascadeService(store.Categories(), store.Tags(), store.Posts(), store.Comments(), store.Users(), store.Likes(), store.Associations())
	dashboardSvc := services.NewDashboardService(store.Posts(), store.Comments())

	app := fiber.New()
	routes.Register(app, routes.Controllers{
		Categories:   controllers.NewCategoryController(categorySvc, cascadeSvc),
		Tags:         controllers.NewTagController(tagSvc, cascadeSvc),
		Posts:        controllers.NewPostController(postSvc, likeSvc, cascadeSvc),
		Comments:     controllers.NewCommentController(commentSvc),
		Users:        controllers.NewUserController(userSvc, cascadeSvc),
		Associations: controllers.NewAssociationController(associationSvc),
		Dashboard:    controllers.NewDashboardController(dashboardSvc),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestCategoryEndpoints(t *testing.T) {
	app := setupTestApp()

	resp, created := doJSON(t, app, "POST", "/categories/", map[string]string{
		"name":        "Tech",
		"description": "All things technical",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := created["id"].(string)

	// missing name is a 400
	resp, _ = doJSON(t, app, "POST", "/categories/", map[string]string{"description": "nameless"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// lookup by id and by name hit the same document
	resp, byID := doJSON(t, app, "GET", "/categories/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, byName := doJSON(t, app, "GET", "/categories/Tech", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, byID["id"], byName["id"])

	resp, _ = doJSON(t, app, "GET", "/categories/NoSuch", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, count := doJSON(t, app, "GET", "/categories/count", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), count["total"])
}

func TestLikeEndpointConflict(t *testing.T) {
	app := setupTestApp()

	_, user := doJSON(t, app, "POST", "/users/", map[string]string{
		"username": "liker",
		"email":    "liker@example.com",
		"password": "password123",
	})
	userID := user["id"].(string)

	_, post := doJSON(t, app, "POST", "/posts/", map[string]any{
		"title":   "Likeable",
		"content": "body",
		"author":  map[string]string{"name": "Author"},
	})
	postID := post["id"].(string)

	likePath := fmt.Sprintf("/posts/%s/like/%s", postID, userID)

	resp, liked := doJSON(t, app, "POST", likePath, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), liked["likes"])

	// second like from the same user conflicts
	resp, body := doJSON(t, app, "POST", likePath, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "duplicate_like", body["code"])

	// unlike, then unlike again is a 404
	resp, _ = doJSON(t, app, "DELETE", likePath, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "DELETE", likePath, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	app := setupTestApp()

	resp, body := doJSON(t, app, "GET", "/posts/not-an-id", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_id", body["code"])
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	app := setupTestApp()

	_, tag := doJSON(t, app, "POST", "/tags/", map[string]string{"name": "golang"})
	tagID := tag["id"].(string)

	resp, post := doJSON(t, app, "POST", "/posts/", map[string]any{
		"title":   "Gopher Notes",
		"content": "notes",
		"author":  map[string]string{"name": "Writer"},
		"tags_id": []string{tagID},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	postID := post["id"].(string)

	resp, details := doJSON(t, app, "GET", "/posts/"+postID+"/full_details", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tags := details["tags"].([]any)
	require.Len(t, tags, 1)

	resp, _ = doJSON(t, app, "GET", "/posts/search/by_title?title=gopher", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/posts/"+postID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "GET", "/posts/"+postID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	app := setupTestApp()

	resp, stats := doJSON(t, app, "GET", "/dashboard/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), stats["total_posts"])
	assert.Nil(t, stats["most_popular_category"])
}
