package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
)

// PostRecord is a post row joined with its category and author metadata.
// Category and author references are nullable, so the joined fields may be
// empty strings.
type PostRecord struct {
	models.Post  `gorm:"embedded"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
	AuthorName   string `json:"author_name"`
	AuthorBio    string `json:"author_bio"`
}

// PostInput carries the scalar fields of a post create or update request.
type PostInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	Status        string
	CategoryID    *uint
	AuthorID      *uint
}

// PostRepository provides CRUD and status-filtered retrieval for posts.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a PostRepository bound to the given handle.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postJoinSelect = "posts.*, categories.name AS category_name, categories.slug AS category_slug, users.username AS author_name, users.bio AS author_bio"

func (r *PostRepository) joined() *gorm.DB {
	return r.db.Table("posts").
		Select(postJoinSelect).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Joins("LEFT JOIN users ON users.id = posts.author_id")
}

// Create inserts a new post, deriving the slug from the title. A unique-key
// violation on the slug is surfaced as ErrDuplicateSlug.
func (r *PostRepository) Create(in PostInput) (uint, error) {
	status := in.Status
	if status == "" {
		status = models.StatusPublished
	}
	post := models.Post{
		Title:         in.Title,
		Slug:          Slugify(in.Title),
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		CategoryID:    in.CategoryID,
		AuthorID:      in.AuthorID,
		Status:        status,
		FeaturedImage: in.FeaturedImage,
	}
	if err := r.db.Create(&post).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateSlug
		}
		return 0, err
	}
	return post.ID, nil
}

// Update rewrites the mutable fields of a post and re-derives the slug from
// the (possibly changed) title. Re-running with an unchanged title yields
// the same slug.
func (r *PostRepository) Update(id uint, in PostInput) error {
	status := in.Status
	if status == "" {
		status = models.StatusPublished
	}
	updates := map[string]interface{}{
		"title":          in.Title,
		"slug":           Slugify(in.Title),
		"content":        in.Content,
		"excerpt":        in.Excerpt,
		"category_id":    in.CategoryID,
		"featured_image": in.FeaturedImage,
		"status":         status,
		"updated_at":     time.Now(),
	}
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Delete removes a post by id. Deleting a missing post is not an error.
// Comments referencing the post are left in place.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// GetByID fetches a single post joined with category and author metadata.
// Returns (nil, nil) when no post exists.
func (r *PostRepository) GetByID(id uint) (*PostRecord, error) {
	var rec PostRecord
	err := r.joined().Where("posts.id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetBySlug fetches a single post by its slug. Returns (nil, nil) when
// absent so callers can decide whether that is a 404.
func (r *PostRepository) GetBySlug(slug string) (*PostRecord, error) {
	var rec PostRecord
	err := r.joined().Where("posts.slug = ?", slug).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns posts ordered by creation time descending. An empty filter
// or "all" returns every post; otherwise only the matching status.
func (r *PostRepository) List(statusFilter string) ([]PostRecord, error) {
	q := r.joined()
	if statusFilter != "" && statusFilter != "all" {
		q = q.Where("posts.status = ?", statusFilter)
	}
	var recs []PostRecord
	if err := q.Order("posts.created_at DESC").Scan(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListByCategory returns the published posts of one category, newest first.
func (r *PostRepository) ListByCategory(categoryID uint) ([]PostRecord, error) {
	var recs []PostRecord
	err := r.joined().
		Where("posts.category_id = ? AND posts.status = ?", categoryID, models.StatusPublished).
		Order("posts.created_at DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ListByAuthor returns the published posts of one author, newest first.
func (r *PostRepository) ListByAuthor(authorID uint) ([]PostRecord, error) {
	var recs []PostRecord
	err := r.joined().
		Where("posts.author_id = ? AND posts.status = ?", authorID, models.StatusPublished).
		Order("posts.created_at DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ListDrafts returns all draft posts, newest first.
func (r *PostRepository) ListDrafts() ([]PostRecord, error) {
	return r.List(models.StatusDraft)
}

// ListScheduled returns all scheduled posts, newest first.
func (r *PostRepository) ListScheduled() ([]PostRecord, error) {
	return r.List(models.StatusScheduled)
}

// Search runs the store's native substring match against title or content,
// restricted to published posts, newest first. This is a pre-filter; the
// ranking package reranks the result by relevance.
func (r *PostRepository) Search(query string) ([]PostRecord, error) {
	like := "%" + query + "%"
	var recs []PostRecord
	err := r.joined().
		Where("(posts.title LIKE ? OR posts.content LIKE ?) AND posts.status = ?", like, like, models.StatusPublished).
		Order("posts.created_at DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ListPopular returns published posts ordered by view count descending with
// a caller-supplied limit. This is the storage-level popularity listing, not
// the recommendation scoring pass.
func (r *PostRepository) ListPopular(limit int) ([]PostRecord, error) {
	var recs []PostRecord
	err := r.joined().
		Where("posts.status = ?", models.StatusPublished).
		Order("posts.views DESC").
		Limit(limit).
		Scan(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
