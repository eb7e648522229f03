package wordpress

// Rendered wraps the {"rendered": "..."} envelope the WordPress REST API
// uses for HTML-bearing fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// User represents a user from the WordPress REST API.
type User struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Email       string            `json:"email,omitempty"`
	Description string            `json:"description,omitempty"`
	AvatarURLs  map[string]string `json:"avatar_urls,omitempty"`
}

// Category represents a category term from the WordPress REST API.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// YoastHead carries the SEO meta fields the Yoast plugin exposes on posts.
type YoastHead struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Post represents a post from the WordPress REST API.
type Post struct {
	ID            int        `json:"id"`
	Date          string     `json:"date"`
	Slug          string     `json:"slug"`
	Status        string     `json:"status"`
	Title         Rendered   `json:"title"`
	Content       Rendered   `json:"content"`
	Excerpt       Rendered   `json:"excerpt"`
	Author        int        `json:"author"`
	FeaturedMedia int        `json:"featured_media,omitempty"`
	Categories    []int      `json:"categories,omitempty"`
	Sticky        bool       `json:"sticky,omitempty"`
	YoastHeadJSON *YoastHead `json:"yoast_head_json,omitempty"`
}

// Media represents a media attachment from the WordPress REST API.
type Media struct {
	ID          int      `json:"id"`
	SourceURL   string   `json:"source_url"`
	Title       Rendered `json:"title"`
	Caption     Rendered `json:"caption"`
	Description Rendered `json:"description"`
	AltText     string   `json:"alt_text,omitempty"`
}
