package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tuiter/internal/models"
	"tuiter/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserAccount{}, &models.Tweet{}))
	return db
}

func TestGORMUserRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	acc := account("id-1", "maria@example.com")
	require.NoError(t, repo.Create(&acc))

	got, err := repo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", got.Email)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGORMUserRepository_NotFound(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Delete("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	acc := account("id-rogue", "nadie@example.com")
	err = repo.Replace("missing", &acc)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_ReplaceKeepsIdentifier(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	acc := account("id-1", "maria@example.com")
	require.NoError(t, repo.Create(&acc))

	replacement := account("id-other", "maria.nueva@example.com")
	require.NoError(t, repo.Replace("id-1", &replacement))

	got, err := repo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "maria.nueva@example.com", got.Email)

	_, err = repo.GetByID("id-other")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_Delete(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	acc := account("id-1", "maria@example.com")
	require.NoError(t, repo.Create(&acc))

	removed, err := repo.Delete("id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", removed.ID)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGORMTweetRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewGORMTweetRepository(newTestDB(t))

	tw := tweet("tw-1", "hola mundo")
	require.NoError(t, repo.Create(&tw))

	got, err := repo.GetByID("tw-1")
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", got.Contenido)
	assert.Equal(t, tw.Autor, got.Autor)
	assert.Nil(t, got.TimestampAct)

	removed, err := repo.Delete("tw-1")
	require.NoError(t, err)
	assert.Equal(t, "tw-1", removed.ID)

	_, err = repo.GetByID("tw-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
