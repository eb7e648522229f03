package mapper

import (
	"fmt"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/entities"
	"github.com/openpress/newsroom/internal/wordpress"
)

// avatarSizes in preference order: largest first.
var avatarSizes = []string{"96", "48", "24"}

// MapUser converts a WordPress user into an Editor. The slug falls back
// to a slugified name, then to "user-{id}"; the email falls back to a
// synthesized placeholder address so the unique-email invariant holds.
func MapUser(u wordpress.User) entities.Editor {
	slug := u.Slug
	if slug == "" {
		slug = ToSlug(u.Name)
	}
	if slug == "" {
		slug = fmt.Sprintf("user-%d", u.ID)
	}

	email := u.Email
	if email == "" {
		email = fmt.Sprintf("%s@%s", slug, config.PlaceholderEmailDomain)
	}

	var avatar string
	for _, size := range avatarSizes {
		if url, ok := u.AvatarURLs[size]; ok && url != "" {
			avatar = url
			break
		}
	}

	return entities.Editor{
		Name:      u.Name,
		Slug:      slug,
		Email:     email,
		Bio:       u.Description,
		AvatarURL: avatar,
	}
}

// MapCategory converts a WordPress category term into a Category.
func MapCategory(c wordpress.Category) entities.Category {
	name := DecodeHTMLEntities(c.Name)
	slug := c.Slug
	if slug == "" {
		slug = ToSlug(name)
	}
	return entities.Category{
		Name:        name,
		Slug:        slug,
		Description: c.Description,
	}
}

// MapPost converts a WordPress post into an Article. Published is true
// only for the "publish" status; "future" posts get ScheduledAt instead
// of PublishedAt, mutually exclusive. Category and editor foreign keys
// are resolved by the importer, not here.
func MapPost(p wordpress.Post) entities.Article {
	title := StripHTML(p.Title.Rendered)
	slug := p.Slug
	if slug == "" {
		slug = ToSlug(title)
	}

	article := entities.Article{
		Title:    title,
		Slug:     slug,
		Excerpt:  Truncate(StripHTML(p.Excerpt.Rendered), 500),
		Content:  DecodeHTMLEntities(p.Content.Rendered),
		ReadTime: CalculateReadTime(p.Content.Rendered),
		Featured: p.Sticky,
	}

	article.Published = p.Status == string(entities.PostStatusPublish)
	if date, err := ParseDate(p.Date); err == nil {
		switch p.Status {
		case string(entities.PostStatusPublish):
			article.PublishedAt = &date
		case string(entities.PostStatusFuture):
			article.ScheduledAt = &date
		}
	}

	if p.YoastHeadJSON != nil {
		article.SEOTitle = StripHTML(p.YoastHeadJSON.Title)
		article.SEODescription = StripHTML(p.YoastHeadJSON.Description)
	}

	return article
}

// ApplyMedia copies featured-image metadata from a media attachment onto
// an article. A nil media is a no-op: featured images are best-effort.
func ApplyMedia(article *entities.Article, media *wordpress.Media) {
	if media == nil || media.SourceURL == "" {
		return
	}
	article.FeaturedImageURL = media.SourceURL
	article.FeaturedImageTitle = StripHTML(media.Title.Rendered)
	article.FeaturedImageCaption = StripHTML(media.Caption.Rendered)
	article.FeaturedImageDescription = StripHTML(media.Description.Rendered)
	article.FeaturedImageAltText = media.AltText
}
