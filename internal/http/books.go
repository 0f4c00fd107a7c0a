package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
)

// BooksController serves the catalog as JSON. Unlike the HTML listing it
// keeps no per-client search state.
type BooksController struct {
	lister CatalogLister
}

func NewBooksController(lister CatalogLister) *BooksController {
	return &BooksController{
		lister: lister,
	}
}

// GetCatalog returns the catalog rows.
// GET /api/books?search=<term>&order=<order by title|order by author>
func (controller *BooksController) GetCatalog(c *gin.Context) {
	listing := controller.lister.List(catalogRepo.Query{
		Search: c.Query("search"),
		Sort:   catalogRepo.ParseSortOrder(c.Query("order")),
	})
	if listing.Failed() {
		respondInternalError(c, listing.Err, "list catalog")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"books":   listing.Rows,
		"count":   len(listing.Rows),
		"message": listing.Message,
	})
}
