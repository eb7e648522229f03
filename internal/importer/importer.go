// Package importer drives content imports into the local store. The
// WordPress importer coordinates the API client and the field mapper
// across three strictly sequential phases (users, categories, articles);
// the CSV importer feeds the same upsert logic from an uploaded file.
//
// Every item is processed independently: one bad record is logged into
// the result list and the run continues. Only the initial connection
// test and collection-level fetch errors abort a run.
package importer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/mapper"
	"github.com/openpress/newsroom/internal/wordpress"
)

// Client is the subset of the WordPress API client the importer needs.
type Client interface {
	TestConnection(ctx context.Context) error
	FetchUsers(ctx context.Context) ([]wordpress.User, error)
	FetchCategories(ctx context.Context) ([]wordpress.Category, error)
	FetchPosts(ctx context.Context, statuses []string) ([]wordpress.Post, error)
	FetchMedia(ctx context.Context, id int) (*wordpress.Media, error)
}

// Options configure one import run.
type Options struct {
	// Statuses filters posts by lifecycle label. Only effective when the
	// client is authenticated; WordPress defaults public clients to
	// published posts regardless.
	Statuses []string
	// SkipExisting leaves records that already exist untouched instead
	// of updating them in place.
	SkipExisting bool
}

// Importer runs WordPress imports against the local store.
type Importer struct {
	client Client
	store
}

// NewImporter creates an importer over the given client and database.
func NewImporter(client Client, db *gorm.DB, log zerolog.Logger) *Importer {
	return &Importer{
		client: client,
		store:  newStore(db, log.With().Str("component", "importer").Logger()),
	}
}

// Run executes a full import: connection test, then the users, categories
// and articles phases in order. The returned report has one entry per
// external record; a non-nil error means the run aborted.
func (imp *Importer) Run(ctx context.Context, opts Options) (*Report, error) {
	if err := imp.client.TestConnection(ctx); err != nil {
		return nil, err
	}

	report := &Report{}

	userIDs, userResults, err := imp.importUsers(ctx, opts)
	if err != nil {
		return nil, err
	}
	report.Users = userResults

	categoryIDs, categoryResults, err := imp.importCategories(ctx, opts)
	if err != nil {
		return nil, err
	}
	report.Categories = categoryResults

	articleResults, err := imp.importArticles(ctx, opts, userIDs, categoryIDs)
	if err != nil {
		return nil, err
	}
	report.Articles = articleResults

	summary := report.Summary()
	imp.log.Info().
		Int("users_created", summary.Users.Created).
		Int("categories_created", summary.Categories.Created).
		Int("articles_created", summary.Articles.Created).
		Int("failed", summary.Users.Failed+summary.Categories.Failed+summary.Articles.Failed).
		Msg("Import run finished")

	return report, nil
}

// importUsers fetches all external users and upserts them as editors,
// returning the external-id to editor-id mapping for the articles phase.
func (imp *Importer) importUsers(ctx context.Context, opts Options) (map[int]uint, []ItemResult, error) {
	users, err := imp.client.FetchUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching users: %w", err)
	}

	ids := make(map[int]uint, len(users))
	results := make([]ItemResult, 0, len(users))

	for _, user := range users {
		result := ItemResult{Type: "user", ExternalID: user.ID, Title: user.Name}

		if v := mapper.ValidateUser(user); !v.Valid {
			result.Errors = v.Errors
			results = append(results, result)
			continue
		}

		editor, action, err := imp.upsertEditor(mapper.MapUser(user), opts.SkipExisting)
		if err != nil {
			imp.log.Warn().Err(err).Int("external_id", user.ID).Msg("Failed to save editor")
			result.Errors = []string{err.Error()}
			results = append(results, result)
			continue
		}

		ids[user.ID] = editor.ID
		result.Success = true
		result.Action = action
		result.Slug = editor.Slug
		results = append(results, result)
	}

	return ids, results, nil
}

// importCategories mirrors the users phase, keyed by slug then name.
func (imp *Importer) importCategories(ctx context.Context, opts Options) (map[int]uint, []ItemResult, error) {
	cats, err := imp.client.FetchCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching categories: %w", err)
	}

	ids := make(map[int]uint, len(cats))
	results := make([]ItemResult, 0, len(cats))

	for _, cat := range cats {
		result := ItemResult{Type: "category", ExternalID: cat.ID, Title: cat.Name}

		if v := mapper.ValidateCategory(cat); !v.Valid {
			result.Errors = v.Errors
			results = append(results, result)
			continue
		}

		category, action, err := imp.upsertCategory(mapper.MapCategory(cat), opts.SkipExisting)
		if err != nil {
			imp.log.Warn().Err(err).Int("external_id", cat.ID).Msg("Failed to save category")
			result.Errors = []string{err.Error()}
			results = append(results, result)
			continue
		}

		ids[cat.ID] = category.ID
		result.Success = true
		result.Action = action
		result.Slug = category.Slug
		results = append(results, result)
	}

	return ids, results, nil
}

// importArticles resolves authors and categories through the phase maps
// and upserts each post by slug. A post whose author was never imported
// is a per-item failure; a post without a mapped category falls back to
// the lazily-created General category.
func (imp *Importer) importArticles(ctx context.Context, opts Options, userIDs, categoryIDs map[int]uint) ([]ItemResult, error) {
	posts, err := imp.client.FetchPosts(ctx, opts.Statuses)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var generalID uint
	results := make([]ItemResult, 0, len(posts))

	for _, post := range posts {
		result := ItemResult{Type: "article", ExternalID: post.ID, Title: mapper.StripHTML(post.Title.Rendered)}

		if v := mapper.ValidatePost(post); !v.Valid {
			result.Errors = v.Errors
			results = append(results, result)
			continue
		}

		editorID, ok := userIDs[post.Author]
		if !ok {
			result.Errors = []string{fmt.Sprintf("author %d not found in imported users", post.Author)}
			results = append(results, result)
			continue
		}

		categoryID := resolveCategory(post.Categories, categoryIDs)
		if categoryID == 0 {
			if generalID == 0 {
				generalID, err = imp.generalCategory()
				if err != nil {
					result.Errors = []string{err.Error()}
					results = append(results, result)
					continue
				}
			}
			categoryID = generalID
		}

		article := mapper.MapPost(post)
		article.EditorID = editorID
		article.CategoryID = categoryID

		// Featured media is best-effort: losing the image never fails
		// the article.
		if post.FeaturedMedia > 0 {
			media, err := imp.client.FetchMedia(ctx, post.FeaturedMedia)
			if err != nil {
				imp.log.Warn().Err(err).Int("media_id", post.FeaturedMedia).Msg("Featured media fetch failed, importing without image")
			} else {
				mapper.ApplyMedia(&article, media)
			}
		}

		saved, action, err := imp.upsertArticle(article, opts.SkipExisting)
		if err != nil {
			imp.log.Warn().Err(err).Int("external_id", post.ID).Msg("Failed to save article")
			result.Errors = []string{err.Error()}
			results = append(results, result)
			continue
		}

		result.Success = true
		result.Action = action
		result.Slug = saved.Slug
		results = append(results, result)
	}

	return results, nil
}

// resolveCategory returns the first external category id that was mapped
// during the categories phase, or 0 when none applies.
func resolveCategory(external []int, categoryIDs map[int]uint) uint {
	for _, id := range external {
		if internal, ok := categoryIDs[id]; ok {
			return internal
		}
	}
	return 0
}
