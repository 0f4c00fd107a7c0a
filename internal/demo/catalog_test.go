package demo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/catalog"
)

func setupRepo(t *testing.T) *catalog.Repository {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "demo.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return catalog.NewRepository(db.DB)
}

func TestSeed(t *testing.T) {
	repo := setupRepo(t)

	result, err := Seed(repo, false)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Authors)
	assert.Equal(t, 12, result.Books)

	rows, err := repo.ListCatalog(catalog.Query{Search: "Tolkien"})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	authors, err := repo.ListAuthors()
	require.NoError(t, err)
	for _, a := range authors {
		if a.Name == "Chimamanda Ngozi Adichie" {
			assert.Nil(t, a.DateOfDeath)
		} else {
			assert.NotNil(t, a.DateOfDeath, a.Name)
		}
	}
}

func TestSeed_RefusesNonEmptyCatalog(t *testing.T) {
	repo := setupRepo(t)

	_, err := Seed(repo, false)
	require.NoError(t, err)

	_, err = Seed(repo, false)
	assert.ErrorIs(t, err, ErrCatalogNotEmpty)
}

func TestSeed_Force(t *testing.T) {
	repo := setupRepo(t)

	_, err := Seed(repo, false)
	require.NoError(t, err)

	result, err := Seed(repo, true)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Books)

	rows, err := repo.ListCatalog(catalog.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 24)
}
