package importer

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/database/articles"
	"github.com/openpress/newsroom/internal/database/categories"
	"github.com/openpress/newsroom/internal/database/editors"
	"github.com/openpress/newsroom/internal/entities"
)

const (
	generalCategoryName = "General"
	generalCategorySlug = "general"
)

// store bundles the repositories and the shared upsert logic. Both the
// WordPress and the CSV importer write through it, so create-or-update
// semantics and collision resolution stay identical across sources.
type store struct {
	editors    *editors.Repository
	categories *categories.Repository
	articles   *articles.Repository
	log        zerolog.Logger
}

func newStore(db *gorm.DB, log zerolog.Logger) store {
	return store{
		editors:    editors.NewRepository(db),
		categories: categories.NewRepository(db),
		articles:   articles.NewRepository(db),
		log:        log,
	}
}

// upsertEditor matches by email first, then by name, and creates a new
// editor with collision-free slug and email when neither matches.
func (s *store) upsertEditor(mapped entities.Editor, skipExisting bool) (*entities.Editor, Action, error) {
	existing, err := s.editors.GetByEmail(mapped.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		existing, err = s.editors.GetByName(mapped.Name)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if existing != nil {
		if skipExisting {
			return existing, ActionSkipped, nil
		}
		existing.Name = mapped.Name
		existing.Bio = mapped.Bio
		existing.AvatarURL = mapped.AvatarURL
		if err := s.editors.Update(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	mapped.Slug, err = uniqueSlug(mapped.Slug, s.editors.SlugExists)
	if err != nil {
		return nil, "", err
	}
	mapped.Email, err = uniqueEmail(mapped.Email, s.editors.EmailExists)
	if err != nil {
		return nil, "", err
	}
	if err := s.editors.Create(&mapped); err != nil {
		return nil, "", err
	}
	return &mapped, ActionCreated, nil
}

// upsertCategory matches by slug first, then by name.
func (s *store) upsertCategory(mapped entities.Category, skipExisting bool) (*entities.Category, Action, error) {
	existing, err := s.categories.GetBySlug(mapped.Slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		existing, err = s.categories.GetByName(mapped.Name)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if existing != nil {
		if skipExisting {
			return existing, ActionSkipped, nil
		}
		existing.Name = mapped.Name
		existing.Description = mapped.Description
		if err := s.categories.Update(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	mapped.Slug, err = uniqueSlug(mapped.Slug, s.categories.SlugExists)
	if err != nil {
		return nil, "", err
	}
	if err := s.categories.Create(&mapped); err != nil {
		return nil, "", err
	}
	return &mapped, ActionCreated, nil
}

// upsertArticle matches by slug. Updates keep the stored slug even when
// the incoming title differs; only creations run collision resolution.
func (s *store) upsertArticle(mapped entities.Article, skipExisting bool) (*entities.Article, Action, error) {
	existing, err := s.articles.GetBySlug(mapped.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if existing != nil {
		if skipExisting {
			return existing, ActionSkipped, nil
		}
		copyArticleFields(existing, &mapped)
		if err := s.articles.Update(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	mapped.Slug, err = uniqueSlug(mapped.Slug, s.articles.SlugExists)
	if err != nil {
		return nil, "", err
	}
	if err := s.articles.Create(&mapped); err != nil {
		return nil, "", err
	}
	return &mapped, ActionCreated, nil
}

// generalCategory returns the id of the fallback category, creating it
// on first use.
func (s *store) generalCategory() (uint, error) {
	existing, err := s.categories.GetBySlug(generalCategorySlug)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	general := entities.Category{Name: generalCategoryName, Slug: generalCategorySlug}
	if err := s.categories.Create(&general); err != nil {
		return 0, err
	}
	return general.ID, nil
}

// copyArticleFields overwrites everything except the identity fields
// (ID, Slug, timestamps).
func copyArticleFields(dst, src *entities.Article) {
	dst.Title = src.Title
	dst.Excerpt = src.Excerpt
	dst.Content = src.Content
	dst.Published = src.Published
	dst.PublishedAt = src.PublishedAt
	dst.ScheduledAt = src.ScheduledAt
	dst.FeaturedImageURL = src.FeaturedImageURL
	dst.FeaturedImageTitle = src.FeaturedImageTitle
	dst.FeaturedImageCaption = src.FeaturedImageCaption
	dst.FeaturedImageDescription = src.FeaturedImageDescription
	dst.FeaturedImageAltText = src.FeaturedImageAltText
	dst.SEOTitle = src.SEOTitle
	dst.SEODescription = src.SEODescription
	dst.ReadTime = src.ReadTime
	dst.Featured = src.Featured
	dst.CategoryID = src.CategoryID
	dst.EditorID = src.EditorID
}
