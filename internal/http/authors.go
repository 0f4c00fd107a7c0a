package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
)

const (
	MessageAuthorAdded       = "Author added successfully!"
	MessageAuthorAddFailed   = "Could not add author. Please try again."
	MessageBookAdded         = "Book added successfully!"
	MessageBookAddFailed     = "Could not add book. Please try again."
	MessageAuthorsLoadFailed = "Could not load authors. Please try again."
)

type AuthorsController struct {
	store        AuthorStore
	auditService *audit.Service
}

func NewAuthorsController(store AuthorStore, auditService *audit.Service) *AuthorsController {
	return &AuthorsController{store: store, auditService: auditService}
}

// NewAuthorForm renders the empty author form.
// GET /add_author
func (ac *AuthorsController) NewAuthorForm(c *gin.Context) {
	ac.render(c, http.StatusOK, "")
}

// CreateAuthor inserts the submitted author.
// POST /add_author
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var form AuthorForm
	if msg, ok := bindForm(c, &form); !ok {
		ac.render(c, http.StatusBadRequest, msg)
		return
	}
	author, err := form.Author()
	if err != nil {
		ac.render(c, http.StatusBadRequest, err.Error())
		return
	}

	err = ac.store.CreateAuthor(author)
	if ac.auditService != nil {
		ac.auditService.LogCreate("author", author.ID, author.Name, c.ClientIP(), err)
	}
	if err != nil {
		log.Printf("Failed to add author %q: %v", author.Name, err)
		ac.render(c, http.StatusInternalServerError, MessageAuthorAddFailed)
		return
	}

	ac.render(c, http.StatusOK, MessageAuthorAdded)
}

func (ac *AuthorsController) render(c *gin.Context, status int, message string) {
	c.HTML(status, "add_author", page(c, gin.H{
		"Title":   "Add author",
		"Message": message,
	}))
}
