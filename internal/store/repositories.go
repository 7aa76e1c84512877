package store

import (
	"github.com/jmalhoy/go-trip-planner/internal/logger"
)

// Repositories bundles every repository behind one constructor so the
// service layer receives a single dependency.
type Repositories struct {
	UserRepository UserRepository
	ListRepository ListRepository
	ItemRepository ItemRepository
}

// NewRepositories constructs all repositories over a shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		ListRepository: NewListRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
