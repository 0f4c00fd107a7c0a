package http

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/catalog"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/session"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Repository *catalogRepo.Repository
	Catalog    *catalog.Service
	Auditor    *audit.Service
	Health     Pinger

	// Per-client search state; nil disables remembering searches
	Sessions *session.Manager

	// CSRF protection is enabled when the secret is non-empty
	CSRFSecret    []byte
	SecureCookies bool

	// UI paths; an empty TemplatesPath selects the embedded templates
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
