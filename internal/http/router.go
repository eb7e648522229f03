package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP
// router, replacing a long parameter list in NewRouter.
type RouterConfig struct {
	Database  *database.Database
	ImportCfg config.Import
	Log       zerolog.Logger
	Version   string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	wordpressImporter := NewWordPressImportController(cfg.Database.DB, cfg.ImportCfg, cfg.Log)
	csvImporter := NewCSVImportController(cfg.Database.DB, cfg.Log)
	content := NewContentController(cfg.Database.DB)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Import endpoints
	router.POST("/api/import/wordpress", wordpressImporter.Import)
	router.POST("/api/import/csv", csvImporter.Import)

	// Content API endpoints
	router.GET("/api/articles", content.ListArticles)
	router.GET("/api/articles/:slug", content.GetArticle)
	router.GET("/api/categories", content.ListCategories)
	router.GET("/api/categories/:slug/articles", content.ListCategoryArticles)
	router.GET("/api/editors", content.ListEditors)

	return router
}
