package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/importer"
)

type CSVImportController struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewCSVImportController(db *gorm.DB, log zerolog.Logger) *CSVImportController {
	return &CSVImportController{db: db, log: log}
}

// Import accepts multipart form data with a "file" field and imports one
// article per row. Row errors are returned capped at the first 20.
func (ctrl *CSVImportController) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "No CSV file provided"})
		return
	}
	defer file.Close()

	ci := importer.NewCSVImporter(ctrl.db, ctrl.log)
	result, err := ci.Import(file)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{
			"error":   "failed to parse CSV",
			"message": err.Error(),
		})
		return
	}

	c.IndentedJSON(http.StatusOK, result)
}
