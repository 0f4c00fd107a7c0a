// Package interfaces holds compile-time checks that the concrete types wired
// in internal/entrypoint satisfy the narrow interfaces their consumers define.
//
// # Where the interfaces live
//
// Each consumer owns the interface it needs:
//
//   - catalog.Store: read side of the catalog (internal/catalog)
//   - http.CatalogLister, AuthorStore, BookStore, DeleteStore, SearchState,
//     Pinger: controller dependencies (internal/http/stores.go, health.go)
//   - demo.Store: sample data seeding (internal/demo)
//   - tasks.AuditPruner: audit retention task (internal/tasks)
//   - scheduler.AuditPruneEnqueuer: cron trigger (internal/scheduler)
//
// catalogRepo.Repository implements every data access interface; the
// checks in checks.go keep that true.
package interfaces
