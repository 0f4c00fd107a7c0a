package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
)

type CatalogController struct {
	lister CatalogLister
	search SearchState
}

func NewCatalogController(lister CatalogLister, search SearchState) *CatalogController {
	return &CatalogController{
		lister: lister,
		search: searchStateOrNone(search),
	}
}

// Index renders the catalog listing.
// GET /?search=<term>&order=<order by title|order by author>
func (controller *CatalogController) Index(c *gin.Context) {
	param, present := c.GetQuery("search")
	term, remember := catalog.ResolveSearch(controller.search.LastSearch(c.Request), param, present)
	controller.search.SetLastSearch(c.Request, remember)

	listing := controller.lister.List(catalogRepo.Query{
		Search: term,
		Sort:   catalogRepo.ParseSortOrder(c.Query("order")),
	})

	renderIndex(c, listing, listing.Message, nil)
}

// renderIndex renders the catalog page. The status is 500 when either the
// listing or the preceding operation (opErr) failed.
func renderIndex(c *gin.Context, listing catalog.Listing, message string, opErr error) {
	status := http.StatusOK
	if listing.Failed() || opErr != nil {
		status = http.StatusInternalServerError
	}

	c.HTML(status, "index", page(c, gin.H{
		"Title":   "Catalog",
		"Rows":    listing.Rows,
		"Message": message,
		"Search":  listing.Query.Search,
		"Order":   c.Query("order"),
	}))
}
