package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/config"
	"github.com/openpress/newsroom/internal/importer"
	"github.com/openpress/newsroom/internal/wordpress"
)

// WordPressImportRequest is the JSON body of an import call. The source
// URL is normalized into the canonical API root, so both the site URL
// and the wp-json URL are accepted.
type WordPressImportRequest struct {
	SourceURL      string   `json:"sourceUrl" binding:"required"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	ImportStatuses []string `json:"importStatuses"`
	SkipExisting   bool     `json:"skipExisting"`
	TestOnly       bool     `json:"testOnly"`
}

type WordPressImportResponse struct {
	Success bool             `json:"success"`
	Summary importer.Summary `json:"summary"`
	Results *importer.Report `json:"results"`
}

type WordPressImportController struct {
	db        *gorm.DB
	importCfg config.Import
	log       zerolog.Logger
}

func NewWordPressImportController(db *gorm.DB, importCfg config.Import, log zerolog.Logger) *WordPressImportController {
	return &WordPressImportController{
		db:        db,
		importCfg: importCfg,
		log:       log,
	}
}

// Import runs a full WordPress import synchronously: the request is held
// open until the whole pipeline finishes. With testOnly set, only the
// connection test runs.
func (ctrl *WordPressImportController) Import(c *gin.Context) {
	var req WordPressImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := ctrl.newClient(req)

	if req.TestOnly {
		if err := client.TestConnection(c.Request.Context()); err != nil {
			c.IndentedJSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.IndentedJSON(http.StatusOK, gin.H{"success": true, "message": "connection ok"})
		return
	}

	imp := importer.NewImporter(client, ctrl.db, ctrl.log)
	report, err := imp.Run(c.Request.Context(), importer.Options{
		Statuses:     req.ImportStatuses,
		SkipExisting: req.SkipExisting,
	})
	if err != nil {
		ctrl.log.Error().Err(err).Str("source", req.SourceURL).Msg("WordPress import aborted")
		c.IndentedJSON(http.StatusBadGateway, gin.H{
			"error":   "import failed",
			"message": err.Error(),
		})
		return
	}

	c.IndentedJSON(http.StatusOK, WordPressImportResponse{
		Success: true,
		Summary: report.Summary(),
		Results: report,
	})
}

func (ctrl *WordPressImportController) newClient(req WordPressImportRequest) *wordpress.Client {
	client := wordpress.NewClient(wordpress.Config{
		BaseURL:  req.SourceURL,
		Username: req.Username,
		Password: req.Password,
	})
	if ctrl.importCfg.PageSize > 0 {
		client.PageSize = ctrl.importCfg.PageSize
	}
	if ctrl.importCfg.PageDelay > 0 {
		client.PageDelay = ctrl.importCfg.PageDelay
	}
	if ctrl.importCfg.RequestTimeout > 0 {
		client.SetTimeout(ctrl.importCfg.RequestTimeout)
	}
	client.MaxPages = ctrl.importCfg.MaxPages
	return client
}
