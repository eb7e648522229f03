package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		WordPress
		WordPressSync
		Import
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	// WordPress holds the default import source. Username/Password is an
	// application password pair; when either is empty, requests go out
	// unauthenticated and the remote site only exposes published posts.
	WordPress struct {
		SourceURL string
		Username  string
		Password  string
		Statuses  []string
	}
	WordPressSync struct {
		Enabled      bool
		Schedule     string // Cron format: "0 */6 * * *" = every 6 hours
		SkipExisting bool
	}
	Import struct {
		PageSize       int
		PageDelay      time.Duration // Pause between page fetches
		RequestTimeout time.Duration
		MaxPages       int // 0 = unbounded
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("wordpress_source_url", "")
	v.SetDefault("wordpress_username", "")
	v.SetDefault("wordpress_password", "")
	v.SetDefault("wordpress_statuses", []string{"publish"})

	v.SetDefault("wordpress_sync_enabled", false)
	v.SetDefault("wordpress_sync_schedule", "0 */6 * * *") // Every 6 hours
	v.SetDefault("wordpress_sync_skip_existing", false)

	v.SetDefault("import_page_size", 100)
	v.SetDefault("import_page_delay", "500ms")
	v.SetDefault("import_request_timeout", "30s")
	v.SetDefault("import_max_pages", 0)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		WordPress: WordPress{
			SourceURL: v.GetString("WORDPRESS_SOURCE_URL"),
			Username:  v.GetString("WORDPRESS_USERNAME"),
			Password:  v.GetString("WORDPRESS_PASSWORD"),
			Statuses:  v.GetStringSlice("WORDPRESS_STATUSES"),
		},
		WordPressSync: WordPressSync{
			Enabled:      v.GetBool("WORDPRESS_SYNC_ENABLED"),
			Schedule:     v.GetString("WORDPRESS_SYNC_SCHEDULE"),
			SkipExisting: v.GetBool("WORDPRESS_SYNC_SKIP_EXISTING"),
		},
		Import: Import{
			PageSize:       v.GetInt("IMPORT_PAGE_SIZE"),
			PageDelay:      v.GetDuration("IMPORT_PAGE_DELAY"),
			RequestTimeout: v.GetDuration("IMPORT_REQUEST_TIMEOUT"),
			MaxPages:       v.GetInt("IMPORT_MAX_PAGES"),
		},
	}
}
