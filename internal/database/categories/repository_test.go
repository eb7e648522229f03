package categories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openpress/newsroom/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Category{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAndGetBySlug(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := entities.Category{Name: "Tech", Slug: "tech", Description: "Technology"}
	require.NoError(t, repo.Create(&category))
	assert.NotZero(t, category.ID)

	found, err := repo.GetBySlug("tech")
	require.NoError(t, err)
	assert.Equal(t, "Tech", found.Name)
}

func TestRepository_GetByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Category{Name: "Tech", Slug: "tech"}))

	found, err := repo.GetByName("Tech")
	require.NoError(t, err)
	assert.Equal(t, "tech", found.Slug)

	_, err = repo.GetByName("Missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := entities.Category{Name: "Tech", Slug: "tech"}
	require.NoError(t, repo.Create(&category))

	category.Description = "All things technology"
	require.NoError(t, repo.Update(&category))

	found, err := repo.GetBySlug("tech")
	require.NoError(t, err)
	assert.Equal(t, "All things technology", found.Description)
}

func TestRepository_SlugExists(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Category{Name: "Tech", Slug: "tech"}))

	exists, err := repo.SlugExists("tech")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists("sports")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_UniqueSlug(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Category{Name: "Tech", Slug: "tech"}))
	assert.Error(t, repo.Create(&entities.Category{Name: "Other", Slug: "tech"}))
}

func TestRepository_List(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Category{Name: "Sports", Slug: "sports"}))
	require.NoError(t, repo.Create(&entities.Category{Name: "Arts", Slug: "arts"}))

	categories, err := repo.List()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Arts", categories[0].Name)
}
