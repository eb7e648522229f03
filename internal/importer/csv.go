package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/entities"
	"github.com/openpress/newsroom/internal/mapper"
)

// maxCSVErrors caps how many row errors are reported back to the caller.
const maxCSVErrors = 20

const (
	fallbackEditorName = "Staff"
	fallbackEditorSlug = "staff"
)

// CSVResult is the outcome of one CSV import.
type CSVResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// CSVImporter imports articles from an uploaded delimited text file,
// writing through the same upsert logic as the WordPress importer. There
// are no external ids here: categories are resolved by name and editors
// by email or display name, lookup-or-create.
type CSVImporter struct {
	store
}

// NewCSVImporter creates a CSV importer over the given database.
func NewCSVImporter(db *gorm.DB, log zerolog.Logger) *CSVImporter {
	return &CSVImporter{
		store: newStore(db, log.With().Str("component", "csv_importer").Logger()),
	}
}

// Import parses the file and upserts one article per row. Row failures
// are collected and do not stop subsequent rows; only an unreadable file
// is a fatal error.
func (ci *CSVImporter) Import(r io.Reader) (*CSVResult, error) {
	rows, err := parseCSV(r)
	if err != nil {
		return nil, err
	}

	result := &CSVResult{Errors: []string{}}
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header line
		if err := ci.importRow(row); err != nil {
			result.Failed++
			if len(result.Errors) < maxCSVErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			}
			continue
		}
		result.Success++
	}

	ci.log.Info().
		Int("success", result.Success).
		Int("failed", result.Failed).
		Msg("CSV import finished")

	return result, nil
}

func (ci *CSVImporter) importRow(row csvRow) error {
	title := mapper.StripHTML(row.Field("title"))
	if title == "" {
		return fmt.Errorf("title is required")
	}
	content := row.Field("content")
	if content == "" {
		return fmt.Errorf("content is required")
	}

	editorID, err := ci.resolveEditor(row)
	if err != nil {
		return fmt.Errorf("resolving editor: %w", err)
	}
	categoryID, err := ci.resolveCategoryByName(firstCategory(row.Field("category")))
	if err != nil {
		return fmt.Errorf("resolving category: %w", err)
	}

	slug := row.Field("slug")
	if slug == "" {
		slug = mapper.ToSlug(title)
	}

	article := entities.Article{
		Title:          title,
		Slug:           slug,
		Excerpt:        mapper.Truncate(mapper.StripHTML(row.Field("excerpt")), 500),
		Content:        mapper.DecodeHTMLEntities(content),
		ReadTime:       mapper.CalculateReadTime(content),
		SEOTitle:       mapper.StripHTML(row.Field("seo_title")),
		SEODescription: mapper.StripHTML(row.Field("seo_description")),
		EditorID:       editorID,
		CategoryID:     categoryID,
	}
	// Featured is not settable via CSV; it is toggled in the admin UI.

	status := strings.ToLower(row.Field("status"))
	article.Published = status == string(entities.PostStatusPublish)
	if date, err := mapper.ParseDate(row.Field("date")); err == nil {
		switch status {
		case string(entities.PostStatusPublish):
			article.PublishedAt = &date
		case string(entities.PostStatusFuture):
			article.ScheduledAt = &date
		}
	}

	_, _, err = ci.upsertArticle(article, false)
	return err
}

// resolveEditor finds or creates the row's editor: by email when one is
// supplied, else by composed display name, else the shared fallback
// editor for rows that carry no author columns at all.
func (ci *CSVImporter) resolveEditor(row csvRow) (uint, error) {
	email := row.Field("author_email")
	name := row.Field("author_name")
	if name == "" {
		name = strings.TrimSpace(row.Field("author_first_name") + " " + row.Field("author_last_name"))
	}

	if name == "" && email == "" {
		name = fallbackEditorName
	}

	slug := mapper.ToSlug(name)
	if slug == "" {
		slug = fallbackEditorSlug
	}
	if email == "" {
		email = fmt.Sprintf("%s@%s", slug, config.PlaceholderEmailDomain)
	}

	editor, _, err := ci.upsertEditor(entities.Editor{
		Name:  name,
		Slug:  slug,
		Email: email,
	}, true)
	if err != nil {
		return 0, err
	}
	return editor.ID, nil
}

// resolveCategoryByName finds or creates the category, falling back to
// General when the row has no category column.
func (ci *CSVImporter) resolveCategoryByName(name string) (uint, error) {
	if name == "" {
		return ci.generalCategory()
	}
	category, _, err := ci.upsertCategory(entities.Category{
		Name: name,
		Slug: mapper.ToSlug(name),
	}, true)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

// firstCategory takes the first of possibly several delimiter-separated
// values in the category column.
func firstCategory(raw string) string {
	for _, sep := range []string{"|", ";", ","} {
		if strings.Contains(raw, sep) {
			raw = strings.SplitN(raw, sep, 2)[0]
			break
		}
	}
	return strings.TrimSpace(raw)
}
