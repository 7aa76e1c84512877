package service

import (
	"context"
	"fmt"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	listRepository store.ListRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] backed by the given repositories.
// The list repository is used to hydrate a user's destination lists on reads.
func NewUserService(userRepository store.UserRepository, listRepository store.ListRepository, bcryptCost int, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		listRepository: listRepository,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// FindAll returns all registered users with public fields only.
func (u *userService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.FindAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user search ended with error")
		return nil, fmt.Errorf("user search ended with error: %w", err)
	}

	return users, nil
}

// Get returns a single user together with all their destination lists.
// A user with no lists is returned with an empty slice, not an error.
func (u *userService) Get(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.GetUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	lists, err := u.listRepository.FindListsForUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("list search for user failed")
		return models.User{}, fmt.Errorf("list search for user failed: %w", err)
	}
	foundUser.Lists = lists

	return foundUser, nil
}

// Update applies a partial update to the user identified by username.
//
// Only the non-nil fields of data are written. A supplied password is
// re-hashed with bcrypt before it reaches the store; plaintext passwords are
// never persisted. Field order in the generated statement is fixed so that
// identical inputs always compile to identical SQL.
func (u *userService) Update(ctx context.Context, username string, data models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	var updates store.Updates
	if data.FirstName != nil {
		updates = updates.Add("first_name", *data.FirstName)
	}
	if data.LastName != nil {
		updates = updates.Add("last_name", *data.LastName)
	}
	if data.Password != nil {
		hash, err := hashPassword(*data.Password, u.bcryptCost)
		if err != nil {
			log.Err(err).Str("username", username).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		updates = updates.Add("password", hash)
	}
	if data.Email != nil {
		updates = updates.Add("email", *data.Email)
	}
	if data.IsAdmin != nil {
		updates = updates.Add("is_admin", *data.IsAdmin)
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, username, updates)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// Remove deletes the user and, through the schema's cascading foreign keys,
// all their destination lists and items.
func (u *userService) Remove(ctx context.Context, username string) error {
	if err := u.userRepository.DeleteUser(ctx, username); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
