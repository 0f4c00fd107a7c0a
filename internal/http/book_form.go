package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/entities"
)

type BookFormController struct {
	store        BookStore
	search       SearchState
	auditService *audit.Service
}

func NewBookFormController(store BookStore, search SearchState, auditService *audit.Service) *BookFormController {
	return &BookFormController{
		store:        store,
		search:       searchStateOrNone(search),
		auditService: auditService,
	}
}

// NewBookForm renders the book form with every author to choose from.
// GET /add_book
func (bc *BookFormController) NewBookForm(c *gin.Context) {
	authors, ok := bc.loadAuthors(c)
	if !ok {
		return
	}
	bc.render(c, http.StatusOK, authors, "")
}

// CreateBook inserts the submitted book and forgets the client's last search
// so the new book shows up in the next listing.
// POST /add_book
func (bc *BookFormController) CreateBook(c *gin.Context) {
	authors, ok := bc.loadAuthors(c)
	if !ok {
		return
	}

	var form BookForm
	if msg, ok := bindForm(c, &form); !ok {
		bc.render(c, http.StatusBadRequest, authors, msg)
		return
	}
	book, err := form.Book()
	if err != nil {
		bc.render(c, http.StatusBadRequest, authors, err.Error())
		return
	}

	err = bc.store.CreateBook(book)
	if bc.auditService != nil {
		bc.auditService.LogCreate("book", book.ID, book.Title, c.ClientIP(), err)
	}
	if err != nil {
		log.Printf("Failed to add book %q (author %d): %v", book.Title, book.AuthorID, err)
		bc.render(c, http.StatusInternalServerError, authors, MessageBookAddFailed)
		return
	}

	bc.search.ClearLastSearch(c.Request)
	bc.render(c, http.StatusOK, authors, MessageBookAdded)
}

func (bc *BookFormController) loadAuthors(c *gin.Context) ([]entities.Author, bool) {
	authors, err := bc.store.ListAuthors()
	if err != nil {
		log.Printf("Failed to load authors: %v", err)
		bc.render(c, http.StatusInternalServerError, []entities.Author{}, MessageAuthorsLoadFailed)
		return nil, false
	}
	return authors, true
}

func (bc *BookFormController) render(c *gin.Context, status int, authors []entities.Author, message string) {
	c.HTML(status, "add_book", page(c, gin.H{
		"Title":   "Add book",
		"Authors": authors,
		"Message": message,
	}))
}
