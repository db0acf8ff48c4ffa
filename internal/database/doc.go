// Package database provides the data access layer for the contact store.
//
// The layer is organized the same way as the rest of the data access
// code in this codebase:
//
//	database/
//	├── database.go   # Connection setup and migrations
//	└── contacts/     # Contact CRUD, search and enumeration
//
// Each sub-package provides a Repository type bound to a *gorm.DB:
//
//	db, err := database.NewDatabase("./rolodex.db")
//	repo := contacts.NewRepository(db.DB)
//	all, err := repo.GetAllContacts()
//
// The export pipeline consumes the store strictly read-only through
// Repository enumeration; writes exist for imports, seeding and tests.
package database
