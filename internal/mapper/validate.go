package mapper

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/openpress/newsroom/internal/wordpress"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	maxUserNameLen       = 200
	maxCategoryNameLen   = 100
	maxTitleLen          = 500
	minContentLen        = 10
	maxContentLen        = 1_000_000
	maxSlugLen           = 200
	maxExcerptLen        = 500
	maxSEOTitleLen       = 60
	maxSEODescriptionLen = 160
)

// Result is the outcome of validating one external record. Validation is
// advisory: invalid records are skipped and reported, never fatal to a run.
type Result struct {
	Valid  bool
	Errors []string
}

func newResult(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateUser checks a WordPress user before mapping.
func ValidateUser(u wordpress.User) Result {
	var errs []string
	if u.Name == "" {
		errs = append(errs, "name is required")
	} else if utf8.RuneCountInString(u.Name) > maxUserNameLen {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxUserNameLen))
	}
	if u.Email != "" && !emailRe.MatchString(u.Email) {
		errs = append(errs, "email format is invalid")
	}
	return newResult(errs)
}

// ValidateCategory checks a WordPress category before mapping.
func ValidateCategory(c wordpress.Category) Result {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	} else if utf8.RuneCountInString(c.Name) > maxCategoryNameLen {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxCategoryNameLen))
	}
	return newResult(errs)
}

// ValidatePost checks a WordPress post before mapping. Length checks on
// HTML-bearing fields apply to the stripped text, except the raw content
// size cap.
func ValidatePost(p wordpress.Post) Result {
	var errs []string

	title := StripHTML(p.Title.Rendered)
	if title == "" {
		errs = append(errs, "title is required")
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}

	if p.Content.Rendered == "" {
		errs = append(errs, "content is required")
	} else {
		if utf8.RuneCountInString(StripHTML(p.Content.Rendered)) < minContentLen {
			errs = append(errs, fmt.Sprintf("content must be at least %d characters of text", minContentLen))
		}
		if len(p.Content.Rendered) > maxContentLen {
			errs = append(errs, fmt.Sprintf("content must be at most %d characters", maxContentLen))
		}
	}

	if p.Slug == "" {
		errs = append(errs, "slug is required")
	} else if utf8.RuneCountInString(p.Slug) > maxSlugLen {
		errs = append(errs, fmt.Sprintf("slug must be at most %d characters", maxSlugLen))
	}

	if utf8.RuneCountInString(StripHTML(p.Excerpt.Rendered)) > maxExcerptLen {
		errs = append(errs, fmt.Sprintf("excerpt must be at most %d characters", maxExcerptLen))
	}

	if p.YoastHeadJSON != nil {
		if utf8.RuneCountInString(StripHTML(p.YoastHeadJSON.Title)) > maxSEOTitleLen {
			errs = append(errs, fmt.Sprintf("seo title must be at most %d characters", maxSEOTitleLen))
		}
		if utf8.RuneCountInString(StripHTML(p.YoastHeadJSON.Description)) > maxSEODescriptionLen {
			errs = append(errs, fmt.Sprintf("seo description must be at most %d characters", maxSEODescriptionLen))
		}
	}

	if date, err := ParseDate(p.Date); err != nil {
		errs = append(errs, fmt.Sprintf("date %q is not a recognized timestamp", p.Date))
	} else if date.After(time.Now().AddDate(1, 0, 0)) {
		errs = append(errs, "date is more than one year in the future")
	}

	return newResult(errs)
}
