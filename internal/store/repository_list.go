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

// listColumnNames maps the logical destination-list update fields to their
// storage columns.
var listColumnNames = map[string]string{
	"searched_address": "searched_address",
	"arrival_date":     "arrival_date",
	"departure_date":   "departure_date",
}

// listRepository is the PostgreSQL-backed implementation of [ListRepository].
// It persists destination lists against the "destination_lists" table.
type listRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListRepository constructs a [ListRepository] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating destination list repository")
	return &listRepository{
		db:     db,
		logger: logger,
	}
}

// CreateList persists a new destination list for its owner and returns the
// row via the INSERT's RETURNING clause.
//
// A foreign_key_violation means the owner does not exist and is reported
// as [ErrUserNotFound].
func (r *listRepository) CreateList(ctx context.Context, list models.DestinationList) (models.DestinationList, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createList,
		list.Username, list.SearchedAddress, list.ArrivalDate, list.DepartureDate)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.DestinationList{}, ErrUserNotFound
		default:
			return models.DestinationList{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.DestinationList
	if err := row.Scan(&created.ID, &created.Username, &created.SearchedAddress, &created.ArrivalDate, &created.DepartureDate); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.DestinationList{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("error: scanning error")
		return models.DestinationList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAllLists returns every destination list ordered by id.
func (r *listRepository) FindAllLists(ctx context.Context) ([]models.DestinationList, error) {
	query, args, err := buildSelectAllListsQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryLists(ctx, "*listRepository.FindAllLists", query, args...)
}

// FindListsForUser returns the destination lists owned by one user. A user
// without lists yields an empty slice.
func (r *listRepository) FindListsForUser(ctx context.Context, username string) ([]models.DestinationList, error) {
	query, args, err := buildSelectListsForUserQuery(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryLists(ctx, "*listRepository.FindListsForUser", query, args...)
}

// GetList returns one destination list.
//
// Returns [ErrListNotFound] when no row matches.
func (r *listRepository) GetList(ctx context.Context, id int64) (models.DestinationList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(ctx, id)
	if err != nil {
		return models.DestinationList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var list models.DestinationList
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&list.ID, &list.Username, &list.SearchedAddress, &list.ArrivalDate, &list.DepartureDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DestinationList{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*listRepository.GetList").Int64("id", id).Msg("error: scanning error")
		return models.DestinationList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return list, nil
}

// UpdateList compiles the supplied partial update into a SET clause,
// appends the id as the identifying key, and returns the updated row via
// the UPDATE's RETURNING clause.
//
// Error handling:
//   - empty update set → [ErrNoUpdateData] from the clause builder.
//   - no matching row → [ErrListNotFound].
func (r *listRepository) UpdateList(ctx context.Context, id int64, updates Updates) (models.DestinationList, error) {
	log := logger.FromContext(ctx)

	clause, err := updates.Compile(listColumnNames)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdateList").Int64("id", id).Msg("failed to compile update")
		return models.DestinationList{}, err
	}

	query := fmt.Sprintf(updateListBase, clause.Fragment(), clause.Next())
	args := append(clause.Args, id)

	var list models.DestinationList
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&list.ID, &list.Username, &list.SearchedAddress, &list.ArrivalDate, &list.DepartureDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DestinationList{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*listRepository.UpdateList").Int64("id", id).Msg("error: scanning error")
		return models.DestinationList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return list, nil
}

// DeleteList removes the list row. The schema cascades the delete to the
// list's items.
//
// Returns [ErrListNotFound] when no row was removed.
func (r *listRepository) DeleteList(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteList, id)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Int64("id", id).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrListNotFound
	}

	return nil
}

// queryLists executes a multi-row list query and scans the result set.
func (r *listRepository) queryLists(ctx context.Context, caller, query string, args ...any) ([]models.DestinationList, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.DestinationList, 0, 16)

	for rows.Next() {
		var l models.DestinationList
		if scanErr := rows.Scan(&l.ID, &l.Username, &l.SearchedAddress, &l.ArrivalDate, &l.DepartureDate); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lists = append(lists, l)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lists, nil
}
