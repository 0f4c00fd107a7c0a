package http

import (
	"net/http"

	"github.com/mrlokans/library/internal/catalog"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// Store interfaces used by the HTTP controllers. Each controller depends on
// the narrowest one it needs.

// CatalogLister runs catalog listings and computes their status message.
type CatalogLister interface {
	List(q catalogRepo.Query) catalog.Listing
}

// AuthorStore persists authors.
type AuthorStore interface {
	CreateAuthor(author *entities.Author) error
}

// BookStore persists books and lists the authors a book can belong to.
type BookStore interface {
	ListAuthors() ([]entities.Author, error)
	CreateBook(book *entities.Book) error
}

// DeleteStore removes a book together with its orphaned author.
type DeleteStore interface {
	DeleteBook(id uint) (*catalogRepo.DeleteResult, error)
}

// SearchState remembers the last search term of the requesting client.
type SearchState interface {
	LastSearch(r *http.Request) string
	SetLastSearch(r *http.Request, term string)
	ClearLastSearch(r *http.Request)
}

// noSearchState is used when no session store is configured: nothing is
// remembered between requests.
type noSearchState struct{}

func (noSearchState) LastSearch(*http.Request) string     { return "" }
func (noSearchState) SetLastSearch(*http.Request, string) {}
func (noSearchState) ClearLastSearch(*http.Request)       {}

func searchStateOrNone(s SearchState) SearchState {
	if s == nil {
		return noSearchState{}
	}
	return s
}
