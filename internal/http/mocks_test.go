package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/catalog"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// newTemplateRouter returns a bare router with the embedded templates loaded.
func newTemplateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := LoadTemplates("")
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	return router
}

type mockLister struct {
	listing catalog.Listing
	queries []catalogRepo.Query
}

func (m *mockLister) List(q catalogRepo.Query) catalog.Listing {
	m.queries = append(m.queries, q)
	listing := m.listing
	listing.Query = q
	if listing.Rows == nil {
		listing.Rows = []entities.CatalogRow{}
	}
	return listing
}

type mockSearchState struct {
	term    string
	cleared bool
}

func (m *mockSearchState) LastSearch(*http.Request) string { return m.term }

func (m *mockSearchState) SetLastSearch(_ *http.Request, term string) { m.term = term }

func (m *mockSearchState) ClearLastSearch(*http.Request) {
	m.term = ""
	m.cleared = true
}

type mockDeleteStore struct {
	result    *catalogRepo.DeleteResult
	err       error
	deletedID uint
}

func (m *mockDeleteStore) DeleteBook(id uint) (*catalogRepo.DeleteResult, error) {
	m.deletedID = id
	return m.result, m.err
}

type mockRepository struct {
	authors    []entities.Author
	authorsErr error
	createErr  error

	createdAuthors []entities.Author
	createdBooks   []entities.Book
}

func (m *mockRepository) CreateAuthor(author *entities.Author) error {
	if m.createErr != nil {
		return m.createErr
	}
	author.ID = uint(len(m.createdAuthors) + 1)
	m.createdAuthors = append(m.createdAuthors, *author)
	return nil
}

func (m *mockRepository) ListAuthors() ([]entities.Author, error) {
	return m.authors, m.authorsErr
}

func (m *mockRepository) CreateBook(book *entities.Book) error {
	if m.createErr != nil {
		return m.createErr
	}
	book.ID = uint(len(m.createdBooks) + 1)
	m.createdBooks = append(m.createdBooks, *book)
	return nil
}
