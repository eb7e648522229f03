package articles

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openpress/newsroom/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_articles_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Editor{}, &entities.Category{}, &entities.Article{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func seedRefs(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	editor := entities.Editor{Name: "Jane", Slug: "jane", Email: "jane@example.com"}
	require.NoError(t, db.Create(&editor).Error)
	category := entities.Category{Name: "Tech", Slug: "tech"}
	require.NoError(t, db.Create(&category).Error)
	return editor.ID, category.ID
}

func publishedAt(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &ts
}

func TestRepository_CreateAndGetBySlug(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	editorID, categoryID := seedRefs(t, db)

	article := entities.Article{
		Title: "Hello", Slug: "hello", Content: "<p>Body</p>",
		EditorID: editorID, CategoryID: categoryID,
	}
	require.NoError(t, repo.Create(&article))

	found, err := repo.GetBySlug("hello")
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)
	assert.Zero(t, found.Category.ID, "plain lookup does not preload relations")
}

func TestRepository_GetBySlugWithRelations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	editorID, categoryID := seedRefs(t, db)

	require.NoError(t, repo.Create(&entities.Article{
		Title: "Hello", Slug: "hello", Content: "<p>Body</p>",
		EditorID: editorID, CategoryID: categoryID,
	}))

	found, err := repo.GetBySlugWithRelations("hello")
	require.NoError(t, err)
	assert.Equal(t, "Tech", found.Category.Name)
	assert.Equal(t, "Jane", found.Editor.Name)
}

func TestRepository_ListPublished(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	editorID, categoryID := seedRefs(t, db)

	require.NoError(t, repo.Create(&entities.Article{
		Title: "Old", Slug: "old", Content: "x", Published: true,
		PublishedAt: publishedAt(t, "2024-01-01"),
		EditorID:    editorID, CategoryID: categoryID,
	}))
	require.NoError(t, repo.Create(&entities.Article{
		Title: "New", Slug: "new", Content: "x", Published: true,
		PublishedAt: publishedAt(t, "2024-06-01"),
		EditorID:    editorID, CategoryID: categoryID,
	}))
	require.NoError(t, repo.Create(&entities.Article{
		Title: "Draft", Slug: "draft", Content: "x", Published: false,
		EditorID: editorID, CategoryID: categoryID,
	}))

	articles, err := repo.ListPublished(10, 0)
	require.NoError(t, err)
	require.Len(t, articles, 2, "drafts excluded")
	assert.Equal(t, "New", articles[0].Title, "newest first")

	articles, err = repo.ListPublished(1, 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Old", articles[0].Title)
}

func TestRepository_ListByCategory(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	editorID, categoryID := seedRefs(t, db)

	other := entities.Category{Name: "Sports", Slug: "sports"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, repo.Create(&entities.Article{
		Title: "Tech story", Slug: "tech-story", Content: "x", Published: true,
		PublishedAt: publishedAt(t, "2024-01-01"),
		EditorID:    editorID, CategoryID: categoryID,
	}))
	require.NoError(t, repo.Create(&entities.Article{
		Title: "Sports story", Slug: "sports-story", Content: "x", Published: true,
		PublishedAt: publishedAt(t, "2024-01-02"),
		EditorID:    editorID, CategoryID: other.ID,
	}))

	articles, err := repo.ListByCategory(categoryID, 10, 0)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Tech story", articles[0].Title)
}

func TestRepository_SlugExistsAndCount(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	editorID, categoryID := seedRefs(t, db)

	require.NoError(t, repo.Create(&entities.Article{
		Title: "Hello", Slug: "hello", Content: "x",
		EditorID: editorID, CategoryID: categoryID,
	}))

	exists, err := repo.SlugExists("hello")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists("other")
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
