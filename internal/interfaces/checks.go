package interfaces

// Compile-time interface implementation checks. They make a missing method
// on a concrete type fail the build instead of a wiring call at runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	catalogRepo "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/demo"
	"github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/session"
	"github.com/mrlokans/library/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ catalog.Store = (*catalogRepo.Repository)(nil)
var _ http.AuthorStore = (*catalogRepo.Repository)(nil)
var _ http.BookStore = (*catalogRepo.Repository)(nil)
var _ http.DeleteStore = (*catalogRepo.Repository)(nil)
var _ demo.Store = (*catalogRepo.Repository)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Services
// =============================================================================

var _ http.CatalogLister = (*catalog.Service)(nil)
var _ http.SearchState = (*session.Manager)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.AuditPruner = (*audit.Service)(nil)
var _ scheduler.AuditPruneEnqueuer = (*tasks.Client)(nil)
