package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "library.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "library.sqlite")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
	assert.NoError(t, db.Ping())
}

func TestNewDatabase_MigratesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"authors", "books", "audit_events"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
}

func TestNewDatabase_EnforcesForeignKeys(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	require.NoError(t, db.DB.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	err := db.DB.Create(&entities.Book{Title: "Orphan", AuthorID: 999}).Error
	assert.Error(t, err)
}

func TestNewDatabase_CascadesAuthorDelete(t *testing.T) {
	db := setupTestDB(t)

	author := entities.Author{Name: "Mary Shelley", BirthDate: time.Date(1797, 8, 30, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.DB.Create(&author).Error)
	require.NoError(t, db.DB.Omit("Author").Create(&entities.Book{Title: "Frankenstein", AuthorID: author.ID}).Error)

	require.NoError(t, db.DB.Delete(&entities.Author{}, author.ID).Error)

	var books int64
	require.NoError(t, db.DB.Model(&entities.Book{}).Count(&books).Error)
	assert.Zero(t, books)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "lib.db?_foreign_keys=on&_busy_timeout=5000", dsn("lib.db"))
	assert.Equal(t, "lib.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", dsn("lib.db?mode=rwc"))
}

func TestClose(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "library.sqlite"))
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}
