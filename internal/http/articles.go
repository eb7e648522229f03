package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpress/newsroom/internal/database/articles"
	"github.com/openpress/newsroom/internal/database/categories"
	"github.com/openpress/newsroom/internal/database/editors"
)

const defaultPageLimit = 20

// ContentController serves the read side of the imported content.
type ContentController struct {
	articles   *articles.Repository
	categories *categories.Repository
	editors    *editors.Repository
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{
		articles:   articles.NewRepository(db),
		categories: categories.NewRepository(db),
		editors:    editors.NewRepository(db),
	}
}

// ListArticles returns published articles, newest first.
func (ctrl *ContentController) ListArticles(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := ctrl.articles.ListPublished(limit, offset)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"articles": list})
}

// GetArticle returns one article by slug with its category and editor.
func (ctrl *ContentController) GetArticle(c *gin.Context) {
	article, err := ctrl.articles.GetBySlugWithRelations(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, article)
}

// ListCategories returns all categories.
func (ctrl *ContentController) ListCategories(c *gin.Context) {
	list, err := ctrl.categories.List()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"categories": list})
}

// ListCategoryArticles returns the published articles of one category.
func (ctrl *ContentController) ListCategoryArticles(c *gin.Context) {
	category, err := ctrl.categories.GetBySlug(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	limit, offset := pagination(c)
	list, err := ctrl.articles.ListByCategory(category.ID, limit, offset)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"category": category, "articles": list})
}

// ListEditors returns all editors.
func (ctrl *ContentController) ListEditors(c *gin.Context) {
	list, err := ctrl.editors.List()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"editors": list})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
