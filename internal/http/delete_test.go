package http

import (
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/catalog"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

func serveDelete(t *testing.T, store *mockDeleteStore, lister *mockLister, target string) *httptest.ResponseRecorder {
	t.Helper()
	controller := NewDeleteController(store, lister, nil)

	router := newTemplateRouter(t)
	router.POST("/book/:book_id/delete", controller.DeleteBook)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestDeleteBook(t *testing.T) {
	store := &mockDeleteStore{result: &catalogRepo.DeleteResult{
		Book: entities.Book{ID: 123, Title: "Emma", AuthorID: 2},
	}}
	lister := &mockLister{}

	w := serveDelete(t, store, lister, "/book/123/delete")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(123), store.deletedID)
	assert.Contains(t, w.Body.String(), html.EscapeString(`Book "Emma" deleted successfully!`))

	// The listing after a delete is neither filtered nor sorted
	require.Len(t, lister.queries, 1)
	assert.Equal(t, catalogRepo.Query{}, lister.queries[0])
}

func TestDeleteBook_CascadesToAuthor(t *testing.T) {
	store := &mockDeleteStore{result: &catalogRepo.DeleteResult{
		Book:   entities.Book{ID: 5, Title: "1984", AuthorID: 3},
		Author: &entities.Author{ID: 3, Name: "George Orwell"},
	}}

	w := serveDelete(t, store, &mockLister{}, "/book/5/delete")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), html.EscapeString(`Book "1984" and its author "George Orwell" deleted successfully!`))
}

func TestDeleteBook_NotFound(t *testing.T) {
	store := &mockDeleteStore{err: catalogRepo.ErrBookNotFound}

	w := serveDelete(t, store, &mockLister{}, "/book/999/delete")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MessageBookNotFound)
}

func TestDeleteBook_StorageFailure(t *testing.T) {
	store := &mockDeleteStore{err: errors.New("database is locked")}

	w := serveDelete(t, store, &mockLister{}, "/book/1/delete")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), MessageBookDeleteFailed)
	assert.NotContains(t, w.Body.String(), "database is locked")
}

func TestDeleteBook_ListingFailureWins(t *testing.T) {
	store := &mockDeleteStore{result: &catalogRepo.DeleteResult{Book: entities.Book{ID: 1, Title: "Emma"}}}
	lister := &mockLister{listing: catalog.Listing{Message: catalog.MessageLoadFailed, Err: errors.New("boom")}}

	w := serveDelete(t, store, lister, "/book/1/delete")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), catalog.MessageLoadFailed)
}

func TestDeleteBookInvalidID(t *testing.T) {
	store := &mockDeleteStore{}
	lister := &mockLister{}

	w := serveDelete(t, store, lister, "/book/invalid/delete")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, MessageInvalidBookID, w.Body.String())
	assert.Zero(t, store.deletedID)
	assert.Empty(t, lister.queries)
}
