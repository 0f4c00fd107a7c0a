package http

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/session"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(session.SecurityHeadersMiddleware())

	// CSRF must run before the session middleware so that the session
	// context is not lost when CSRF replaces the request
	if len(cfg.CSRFSecret) > 0 {
		router.Use(session.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	var search SearchState
	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
		search = cfg.Sessions
	}

	tmpl, err := LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// Serve static files when the directory exists
	if cfg.StaticPath != "" {
		if info, err := os.Stat(cfg.StaticPath); err == nil && info.IsDir() {
			router.Static("/static", cfg.StaticPath)
		}
	}

	health := NewHealthController(cfg.Health, cfg.Version)
	catalogController := NewCatalogController(cfg.Catalog, search)
	authorsController := NewAuthorsController(cfg.Repository, cfg.Auditor)
	bookFormController := NewBookFormController(cfg.Repository, search, cfg.Auditor)
	deleteController := NewDeleteController(cfg.Repository, cfg.Catalog, cfg.Auditor)
	booksController := NewBooksController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog UI
	router.GET("/", catalogController.Index)
	router.GET("/add_author", authorsController.NewAuthorForm)
	router.POST("/add_author", authorsController.CreateAuthor)
	router.GET("/add_book", bookFormController.NewBookForm)
	router.POST("/add_book", bookFormController.CreateBook)
	router.POST("/book/:book_id/delete", deleteController.DeleteBook)

	// JSON API
	router.GET("/api/books", booksController.GetCatalog)
	if cfg.Auditor != nil {
		auditController := NewAuditController(cfg.Auditor)
		router.GET("/api/audit", auditController.GetAuditEvents)
	}

	return router, nil
}
