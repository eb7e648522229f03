package entities

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus is the lifecycle label a WordPress post carries.
type PostStatus string

const (
	PostStatusPublish PostStatus = "publish"
	PostStatusFuture  PostStatus = "future"
	PostStatusDraft   PostStatus = "draft"
	PostStatusPending PostStatus = "pending"
	PostStatusPrivate PostStatus = "private"
)

type Editor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"index;size:200" json:"name"`
	Slug      string         `gorm:"uniqueIndex;size:200" json:"slug"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email"`
	Bio       string         `gorm:"type:text" json:"bio,omitempty"`
	AvatarURL string         `gorm:"size:2048" json:"avatar_url,omitempty"`
	Articles  []Article      `gorm:"foreignKey:EditorID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"index;size:100" json:"name"`
	Slug        string         `gorm:"uniqueIndex;size:200" json:"slug"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Articles    []Article      `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Article struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:512" json:"title"`
	Slug    string `gorm:"uniqueIndex;size:200" json:"slug"`
	Excerpt string `gorm:"size:500" json:"excerpt,omitempty"`
	Content string `gorm:"type:text" json:"content"`

	// Publication state. PublishedAt is set for published articles,
	// ScheduledAt for future-dated ones; the two are mutually exclusive.
	Published   bool       `gorm:"index;default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	// Featured image metadata, populated best-effort from the media API.
	FeaturedImageURL         string `gorm:"size:2048" json:"featured_image_url,omitempty"`
	FeaturedImageTitle       string `gorm:"size:512" json:"featured_image_title,omitempty"`
	FeaturedImageCaption     string `gorm:"type:text" json:"featured_image_caption,omitempty"`
	FeaturedImageDescription string `gorm:"type:text" json:"featured_image_description,omitempty"`
	FeaturedImageAltText     string `gorm:"size:512" json:"featured_image_alt_text,omitempty"`

	SEOTitle       string `gorm:"size:255" json:"seo_title,omitempty"`
	SEODescription string `gorm:"size:500" json:"seo_description,omitempty"`

	ReadTime int  `gorm:"default:1" json:"read_time"`
	Featured bool `gorm:"default:false" json:"featured"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	EditorID   uint     `gorm:"index" json:"editor_id"`
	Editor     Editor   `gorm:"foreignKey:EditorID" json:"editor,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Editor) TableName() string {
	return "editors"
}

func (Category) TableName() string {
	return "categories"
}

func (Article) TableName() string {
	return "articles"
}
