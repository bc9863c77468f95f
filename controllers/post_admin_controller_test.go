package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernblog/modernblog/repository"
)

func newAdminEngine(t *testing.T) (*gin.Engine, *repository.PostRepository) {
	db := newTestDB(t)
	posts := repository.NewPostRepository(db)
	admin := NewPostAdminController(posts, repository.NewCategoryRepository(db))

	engine := newTestEngine()
	engine.POST("/posts", admin.CreatePost)
	engine.PUT("/posts/:id", admin.UpdatePost)
	engine.DELETE("/posts/:id", admin.DeletePost)
	engine.POST("/categories", admin.CreateCategory)
	return engine, posts
}

func TestCreatePostReturnsCreatedRecord(t *testing.T) {
	engine, _ := newAdminEngine(t)

	w := doJSON(t, engine, "POST", "/posts", map[string]interface{}{
		"title":   "Brand New Post",
		"content": "words",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	post, ok := data["post"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "brand-new-post", post["slug"])
	assert.Equal(t, "published", post["status"])
}

func TestCreatePostDuplicateTitleConflicts(t *testing.T) {
	engine, _ := newAdminEngine(t)

	w := doJSON(t, engine, "POST", "/posts", map[string]interface{}{"title": "Same Title", "content": "a"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "POST", "/posts", map[string]interface{}{"title": "Same Title", "content": "b"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePostValidation(t *testing.T) {
	engine, _ := newAdminEngine(t)

	w := doJSON(t, engine, "POST", "/posts", map[string]interface{}{"content": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, "POST", "/posts", map[string]interface{}{"title": "   ", "content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingPostIs404(t *testing.T) {
	engine, _ := newAdminEngine(t)

	w := doJSON(t, engine, "PUT", "/posts/999", map[string]interface{}{"title": "T", "content": "c"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostIsIdempotent(t *testing.T) {
	engine, posts := newAdminEngine(t)

	id, err := posts.Create(repository.PostInput{Title: "Short Lived", Content: "x"})
	require.NoError(t, err)

	path := fmt.Sprintf("/posts/%d", id)
	assert.Equal(t, http.StatusOK, doJSON(t, engine, "DELETE", path, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, engine, "DELETE", path, nil).Code)
}

func TestCreateCategoryDuplicateConflicts(t *testing.T) {
	engine, _ := newAdminEngine(t)

	w := doJSON(t, engine, "POST", "/categories", map[string]string{"name": "Go"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, "POST", "/categories", map[string]string{"name": "Go"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
