// Package editors provides database operations for editor management.
//
// # Usage
//
//	repo := editors.NewRepository(db)
//	editor, err := repo.GetByEmail("jane@example.com")
package editors

import (
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/entities"
)

// Repository handles all editor database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new editors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByEmail retrieves an editor by email, the primary natural key.
func (r *Repository) GetByEmail(email string) (*entities.Editor, error) {
	var editor entities.Editor
	err := r.db.Where("email = ?", email).First(&editor).Error
	if err != nil {
		return nil, err
	}
	return &editor, nil
}

// GetByName retrieves an editor by display name, the fallback natural key.
func (r *Repository) GetByName(name string) (*entities.Editor, error) {
	var editor entities.Editor
	err := r.db.Where("name = ?", name).First(&editor).Error
	if err != nil {
		return nil, err
	}
	return &editor, nil
}

// GetBySlug retrieves an editor by slug.
func (r *Repository) GetBySlug(slug string) (*entities.Editor, error) {
	var editor entities.Editor
	err := r.db.Where("slug = ?", slug).First(&editor).Error
	if err != nil {
		return nil, err
	}
	return &editor, nil
}

// Create inserts a new editor.
func (r *Repository) Create(editor *entities.Editor) error {
	return r.db.Create(editor).Error
}

// Update saves changes to an existing editor.
func (r *Repository) Update(editor *entities.Editor) error {
	return r.db.Save(editor).Error
}

// SlugExists reports whether any editor already uses the slug.
func (r *Repository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Editor{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// EmailExists reports whether any editor already uses the email.
func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Editor{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List returns all editors ordered by name.
func (r *Repository) List() ([]entities.Editor, error) {
	var editors []entities.Editor
	err := r.db.Order("name ASC").Find(&editors).Error
	return editors, err
}
