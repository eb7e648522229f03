// Package categories provides database operations for category management.
package categories

import (
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBySlug retrieves a category by slug, the primary natural key.
func (r *Repository) GetBySlug(slug string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by name, the fallback natural key.
func (r *Repository) GetByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category.
func (r *Repository) Create(category *entities.Category) error {
	return r.db.Create(category).Error
}

// Update saves changes to an existing category.
func (r *Repository) Update(category *entities.Category) error {
	return r.db.Save(category).Error
}

// SlugExists reports whether any category already uses the slug.
func (r *Repository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// List returns all categories ordered by name.
func (r *Repository) List() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}
