// Package articles provides database operations for article management.
package articles

import (
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/entities"
)

// Repository handles all article database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new articles repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBySlug retrieves an article by slug, the natural key for upserts.
func (r *Repository) GetBySlug(slug string) (*entities.Article, error) {
	var article entities.Article
	err := r.db.Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlugWithRelations retrieves an article with its category and editor.
func (r *Repository) GetBySlugWithRelations(slug string) (*entities.Article, error) {
	var article entities.Article
	err := r.db.Preload("Category").Preload("Editor").
		Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article.
func (r *Repository) Create(article *entities.Article) error {
	return r.db.Create(article).Error
}

// Update saves changes to an existing article.
func (r *Repository) Update(article *entities.Article) error {
	return r.db.Save(article).Error
}

// SlugExists reports whether any article already uses the slug.
func (r *Repository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// ListPublished returns published articles, newest first.
func (r *Repository) ListPublished(limit, offset int) ([]entities.Article, error) {
	var articles []entities.Article
	query := r.db.Preload("Category").Preload("Editor").
		Where("published = ?", true).
		Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&articles).Error
	return articles, err
}

// ListByCategory returns published articles for one category, newest first.
func (r *Repository) ListByCategory(categoryID uint, limit, offset int) ([]entities.Article, error) {
	var articles []entities.Article
	query := r.db.Preload("Category").Preload("Editor").
		Where("published = ? AND category_id = ?", true, categoryID).
		Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&articles).Error
	return articles, err
}

// Count returns the total number of articles.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Article{}).Count(&count).Error
	return count, err
}
