package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
)

// CategoryRepository provides lookups and idempotent creation of categories.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a CategoryRepository bound to the handle.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a category, deriving the slug from its name. A duplicate
// name is an expected condition and returns (false, nil); storage faults
// propagate as errors.
func (r *CategoryRepository) Create(name, description, color string) (bool, error) {
	if color == "" {
		color = "#6366f1"
	}
	cat := models.Category{
		Name:        name,
		Slug:        Slugify(name),
		Description: description,
		Color:       color,
	}
	if err := r.db.Create(&cat).Error; err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List() ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// GetBySlug returns the category with the given slug, or (nil, nil).
func (r *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var cat models.Category
	err := r.db.Where("slug = ?", slug).Take(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetByID returns the category with the given id, or (nil, nil).
func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var cat models.Category
	err := r.db.Take(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
