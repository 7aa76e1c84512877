package service

import (
	"context"

	"github.com/jmalhoy/go-trip-planner/models"
)

// AuthService handles credential verification, account registration, and
// JWT token lifecycle.
type AuthService interface {
	// Authenticate verifies the username/password pair and returns the
	// account's public fields. An unknown username and a wrong password
	// both fail with [ErrInvalidCredentials].
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// Register creates a new account. The plaintext password is hashed
	// before persistence. A duplicate username surfaces as
	// [store.ErrUsernameTaken].
	Register(ctx context.Context, user models.User, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes user account reads and mutations.
type UserService interface {
	FindAll(ctx context.Context) ([]models.User, error)

	// Get returns the user together with the destination lists they own.
	Get(ctx context.Context, username string) (models.User, error)

	// Update applies a partial update restricted to the mutable fields.
	// A supplied password is re-hashed before it reaches the store.
	Update(ctx context.Context, username string, upd models.UserUpdate) (models.User, error)

	Remove(ctx context.Context, username string) error
}

// ListService exposes destination list reads and mutations.
type ListService interface {
	FindAll(ctx context.Context) ([]models.DestinationList, error)
	FindAllForUser(ctx context.Context, username string) ([]models.DestinationList, error)

	// Get returns the list together with its items.
	Get(ctx context.Context, id int64) (models.DestinationList, error)

	Create(ctx context.Context, username string, list models.DestinationList) (models.DestinationList, error)
	Update(ctx context.Context, id int64, upd models.DestinationListUpdate) (models.DestinationList, error)
	Remove(ctx context.Context, id int64) error
}

// ItemService exposes list item reads and mutations.
type ItemService interface {
	FindAll(ctx context.Context) ([]models.ListItem, error)
	FindAllForList(ctx context.Context, listID int64) ([]models.ListItem, error)
	Get(ctx context.Context, id int64) (models.ListItem, error)
	Create(ctx context.Context, listID int64, item models.ListItem) (models.ListItem, error)
	Update(ctx context.Context, id int64, upd models.ListItemUpdate) (models.ListItem, error)
	Remove(ctx context.Context, id int64) error
}
