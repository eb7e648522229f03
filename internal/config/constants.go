package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./newsroom.db"

	// PlaceholderEmailDomain is used to synthesize editor emails when the
	// source system does not expose one.
	PlaceholderEmailDomain = "imported.newsroom.local"
)
