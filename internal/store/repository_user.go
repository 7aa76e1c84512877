package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/models"
)

// userColumns maps the logical user update fields to their storage columns.
// Fields absent from the map fall back to their own name.
var userColumns = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"password":   "password",
	"email":      "email",
	"is_admin":   "is_admin",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the public fields via
// the INSERT's RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	if err := row.Scan(&created.Username, &created.FirstName, &created.LastName, &created.Email, &created.IsAdmin); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAllUsers returns every user's public fields ordered by username
// ascending.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)

	for rows.Next() {
		var u models.User
		if scanErr := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.FindAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.FindAllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// FindUserByUsername retrieves a user record including the stored password
// hash. Only the authentication path should call it; every other read goes
// through [userRepository.GetUser].
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserWithPassword, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email, &user.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetUser returns one user's public fields.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.Username, &user.FirstName, &user.LastName, &user.Email, &user.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Str("username", username).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUser compiles the supplied partial update into a SET clause,
// appends the username as the identifying key, and returns the updated
// public fields via the UPDATE's RETURNING clause.
//
// Error handling:
//   - empty update set → [ErrNoUpdateData] from the clause builder.
//   - no matching row → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, username string, updates Updates) (models.User, error) {
	log := logger.FromContext(ctx)

	clause, err := updates.Compile(userColumns)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", username).Msg("failed to compile update")
		return models.User{}, err
	}

	query := fmt.Sprintf(updateUserBase, clause.Fragment(), clause.Next())
	args := append(clause.Args, username)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.Username, &user.FirstName, &user.LastName, &user.Email, &user.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", username).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// DeleteUser removes the user row. The schema cascades the delete to the
// user's destination lists and their items.
//
// Returns [ErrUserNotFound] when no row was removed, including a repeated
// delete of the same username.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
