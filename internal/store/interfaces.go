package store

import (
	"context"

	"github.com/jmalhoy/go-trip-planner/models"
)

// UserRepository is the persistence surface for user accounts.
type UserRepository interface {
	// CreateUser persists a new user. The Password field must already be
	// a bcrypt hash. Returns [ErrUsernameTaken] on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindAllUsers returns every user's public fields ordered by
	// username ascending.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// FindUserByUsername returns one user including the stored password
	// hash. Intended for the authentication path only.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetUser returns one user's public fields.
	GetUser(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies a partial update and returns the updated public
	// fields. Returns [ErrUserNotFound] when the username does not exist.
	UpdateUser(ctx context.Context, username string, updates Updates) (models.User, error)

	// DeleteUser removes the user row; the store cascades to owned lists
	// and items. Returns [ErrUserNotFound] when no row was removed.
	DeleteUser(ctx context.Context, username string) error
}

// ListRepository is the persistence surface for destination lists.
type ListRepository interface {
	CreateList(ctx context.Context, list models.DestinationList) (models.DestinationList, error)
	FindAllLists(ctx context.Context) ([]models.DestinationList, error)
	FindListsForUser(ctx context.Context, username string) ([]models.DestinationList, error)
	GetList(ctx context.Context, id int64) (models.DestinationList, error)
	UpdateList(ctx context.Context, id int64, updates Updates) (models.DestinationList, error)
	DeleteList(ctx context.Context, id int64) error
}

// ItemRepository is the persistence surface for list items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.ListItem) (models.ListItem, error)
	FindAllItems(ctx context.Context) ([]models.ListItem, error)

	// FindItemsForList returns the items of one list. A list without
	// items yields an empty slice, not an error.
	FindItemsForList(ctx context.Context, listID int64) ([]models.ListItem, error)

	// GetItem returns one item enriched with the parent list's address
	// and stay dates.
	GetItem(ctx context.Context, id int64) (models.ListItem, error)
	UpdateItem(ctx context.Context, id int64, updates Updates) (models.ListItem, error)
	DeleteItem(ctx context.Context, id int64) error
}
