// Package catalog turns listing requests into rows plus the status message
// shown above the catalog table.
package catalog

import (
	"fmt"
	"log"
	"strings"

	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// User-facing listing messages.
const (
	MessageEmptyCatalog   = "No books or authors available in the database!"
	MessageSortedByTitle  = "Books sorted by title."
	MessageSortedByAuthor = "Books sorted by author."
	MessageNothingToOrder = "No results to order."
	MessageLoadFailed     = "Something went wrong while loading the catalog. Please try again."
)

// NoMatchesMessage is shown when a search yields no rows.
func NoMatchesMessage(term string) string {
	return fmt.Sprintf("No books found matching %q.", term)
}

// Store is the read side of the catalog repository.
type Store interface {
	ListCatalog(q catalogRepo.Query) ([]entities.CatalogRow, error)
	IsEmpty() (bool, error)
}

// Listing is the outcome of one catalog read. Err is set when storage
// failed; Rows is then empty and Message holds the generic failure text.
type Listing struct {
	Query   catalogRepo.Query
	Rows    []entities.CatalogRow
	Message string
	Err     error
}

// Failed reports whether the listing could not be loaded.
func (l Listing) Failed() bool {
	return l.Err != nil
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List runs q and computes the status message.
//
// Message precedence, later steps overwriting earlier ones:
//  1. empty catalog, else sort confirmation when sorting;
//  2. "no matches" when a search returned nothing;
//  3. "nothing to order" when a sort returned nothing (this overwrites 2);
//  4. storage failure.
func (s *Service) List(q catalogRepo.Query) Listing {
	q = q.Normalized()
	listing := Listing{Query: q, Rows: []entities.CatalogRow{}}

	empty, err := s.store.IsEmpty()
	if err != nil {
		return failed(listing, err)
	}

	rows, err := s.store.ListCatalog(q)
	if err != nil {
		return failed(listing, err)
	}
	listing.Rows = rows

	switch {
	case empty:
		listing.Message = MessageEmptyCatalog
	case q.Sort == catalogRepo.SortByTitle:
		listing.Message = MessageSortedByTitle
	case q.Sort == catalogRepo.SortByAuthor:
		listing.Message = MessageSortedByAuthor
	}

	if q.HasSearch() && len(rows) == 0 {
		listing.Message = NoMatchesMessage(q.Search)
	}
	if q.HasSort() && len(rows) == 0 {
		listing.Message = MessageNothingToOrder
	}

	return listing
}

func failed(listing Listing, err error) Listing {
	log.Printf("Catalog listing failed (search=%q, sort=%s): %v", listing.Query.Search, listing.Query.Sort, err)
	listing.Rows = []entities.CatalogRow{}
	listing.Message = MessageLoadFailed
	listing.Err = err
	return listing
}

// ResolveSearch applies the last-search-term rule for one request.
//
// param/present describe the request's search parameter; stored is the term
// remembered from earlier requests. It returns the term to filter by and the
// term to remember afterwards:
//   - parameter absent: reuse stored;
//   - parameter blank: clear;
//   - parameter set: use and remember it.
func ResolveSearch(stored, param string, present bool) (effective, remember string) {
	if !present {
		return stored, stored
	}
	term := strings.TrimSpace(param)
	return term, term
}
