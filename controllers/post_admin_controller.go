package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modernblog/modernblog/config"
	"github.com/modernblog/modernblog/middleware"
	"github.com/modernblog/modernblog/repository"
	"github.com/modernblog/modernblog/utils"
)

// PostAdminController covers the authoring surface: post CRUD, category
// creation, and featured-image uploads.
type PostAdminController struct {
	posts      *repository.PostRepository
	categories *repository.CategoryRepository
}

// NewPostAdminController creates a PostAdminController.
func NewPostAdminController(posts *repository.PostRepository, categories *repository.CategoryRepository) *PostAdminController {
	return &PostAdminController{posts: posts, categories: categories}
}

type postRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status"`
	CategoryID    *uint  `json:"category_id"`
}

func (p *PostAdminController) bindPost(ctx *gin.Context) (*repository.PostInput, bool) {
	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "title and content are required")
		return nil, false
	}
	in := repository.PostInput{
		Title:         strings.TrimSpace(req.Title),
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		CategoryID:    req.CategoryID,
	}
	if in.Title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40041, "title cannot be blank")
		return nil, false
	}
	return &in, true
}

// CreatePost inserts a new post authored by the authenticated user. A title
// that slugifies to an existing slug is rejected as a conflict.
func (p *PostAdminController) CreatePost(ctx *gin.Context) {
	in, ok := p.bindPost(ctx)
	if !ok {
		return
	}
	if userID, exists := ctx.Get(middleware.ContextUserIDKey); exists {
		if id, ok := userID.(uint); ok {
			in.AuthorID = &id
		}
	}

	id, err := p.posts.Create(*in)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			utils.Error(ctx, http.StatusConflict, 40910, "a post with this title already exists")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to create post")
		return
	}

	post, err := p.posts.GetByID(id)
	if err != nil || post == nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load created post")
		return
	}
	utils.Created(ctx, gin.H{"post": post})
}

// UpdatePost rewrites a post's fields and re-derives its slug.
func (p *PostAdminController) UpdatePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid post id")
		return
	}
	in, ok := p.bindPost(ctx)
	if !ok {
		return
	}

	existing, err := p.posts.GetByID(uint(id))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to load post")
		return
	}
	if existing == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}

	if err := p.posts.Update(uint(id), *in); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			utils.Error(ctx, http.StatusConflict, 40911, "a post with this title already exists")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to update post")
		return
	}

	post, err := p.posts.GetByID(uint(id))
	if err != nil || post == nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to load updated post")
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost removes a post. Deleting an already-deleted post succeeds.
func (p *PostAdminController) DeletePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid post id")
		return
	}
	if err := p.posts.Delete(uint(id)); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50045, "failed to delete post")
		return
	}
	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// CreateCategory adds a category. A duplicate name or slug is reported
// without treating it as a failure.
func (p *PostAdminController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40044, "category name is required")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40045, "category name cannot be blank")
		return
	}

	created, err := p.categories.Create(name, req.Description, req.Color)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50046, "failed to create category")
		return
	}
	if !created {
		utils.Error(ctx, http.StatusConflict, 40912, "category already exists")
		return
	}
	utils.Success(ctx, gin.H{"message": "category created"})
}

// UploadImage stores a featured image under the upload directory with a
// random filename and returns its public URL.
func (p *PostAdminController) UploadImage(ctx *gin.Context) {
	cfg := config.Get()

	file, err := ctx.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40046, "no file provided")
		return
	}

	maxBytes := int64(cfg.UploadMaxMB) << 20
	if file.Size > maxBytes {
		utils.Error(ctx, http.StatusBadRequest, 40047, fmt.Sprintf("file exceeds %dMB limit", cfg.UploadMaxMB))
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	allowed := false
	for _, e := range cfg.UploadAllowedExt {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.Error(ctx, http.StatusBadRequest, 40048, "unsupported file type")
		return
	}

	// Uploads are partitioned by year/month so one directory never grows
	// without bound.
	part := time.Now().Format("2006/01")
	dir := filepath.Join(cfg.UploadDir, filepath.FromSlash(part))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50047, "failed to prepare upload directory")
		return
	}

	name := uuid.NewString() + "." + ext
	if err := ctx.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50048, "failed to save file")
		return
	}

	utils.Success(ctx, gin.H{"url": "/static/uploads/" + part + "/" + name, "filename": name})
}
