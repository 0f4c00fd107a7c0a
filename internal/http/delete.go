package http

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
)

const (
	MessageBookNotFound     = "Book not found!"
	MessageBookDeleteFailed = "Could not delete book. Please try again."
	MessageInvalidBookID    = "Invalid book ID"
)

type DeleteController struct {
	store        DeleteStore
	lister       CatalogLister
	auditService *audit.Service
}

func NewDeleteController(store DeleteStore, lister CatalogLister, auditService *audit.Service) *DeleteController {
	return &DeleteController{store: store, lister: lister, auditService: auditService}
}

// DeleteBook removes a book, and its author when no other book references
// them, then renders the full unsorted catalog with the outcome.
// POST /book/:book_id/delete
func (dc *DeleteController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "book_id", MessageInvalidBookID)
	if !ok {
		return
	}

	message, deleteErr := dc.deleteBook(c, id)

	listing := dc.lister.List(catalogRepo.Query{})
	if listing.Failed() {
		message = listing.Message
	}
	renderIndex(c, listing, message, deleteErr)
}

// deleteBook returns the outcome message plus the storage error, if any. A
// missing book is not an error.
func (dc *DeleteController) deleteBook(c *gin.Context, id uint) (string, error) {
	result, err := dc.store.DeleteBook(id)
	switch {
	case errors.Is(err, catalogRepo.ErrBookNotFound):
		return MessageBookNotFound, nil
	case err != nil:
		log.Printf("Failed to delete book %d: %v", id, err)
		return MessageBookDeleteFailed, err
	}

	if dc.auditService != nil {
		dc.auditService.LogDelete("book", result.Book.ID, result.Book.Title, c.ClientIP(), false)
		if result.Author != nil {
			dc.auditService.LogDelete("author", result.Author.ID, result.Author.Name, c.ClientIP(), true)
		}
	}

	return deletedMessage(result), nil
}

func deletedMessage(result *catalogRepo.DeleteResult) string {
	if result.Author != nil {
		return fmt.Sprintf("Book %q and its author %q deleted successfully!", result.Book.Title, result.Author.Name)
	}
	return fmt.Sprintf("Book %q deleted successfully!", result.Book.Title)
}
