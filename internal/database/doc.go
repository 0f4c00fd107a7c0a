// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── catalog/         # Authors, books and the catalog query builder
//	└── audit/           # Audit event persistence
//
// Each sub-package provides a Repository type over a *gorm.DB:
//
//	db, err := database.NewDatabase("./data/library.sqlite")
//	catalogRepo := catalog.NewRepository(db.DB)
//	rows, err := catalogRepo.ListCatalog(catalog.Query{Search: "Tolkien"})
package database
