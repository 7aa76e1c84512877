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

// itemColumnNames maps the logical list-item update fields to their storage
// columns.
var itemColumnNames = map[string]string{
	"category": "category",
	"item":     "item",
	"qty":      "qty",
}

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It persists packing/itinerary entries against the "list_items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating list item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item under its destination list and returns the
// row via the INSERT's RETURNING clause.
//
// A foreign_key_violation means the list does not exist and is reported as
// [ErrListNotFound].
func (r *itemRepository) CreateItem(ctx context.Context, item models.ListItem) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.ListID, item.Category, item.Item, item.Qty)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.ListItem{}, ErrListNotFound
		default:
			return models.ListItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.ListItem
	if err := row.Scan(&created.ID, &created.ListID, &created.Category, &created.Item, &created.Qty); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.ListItem{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAllItems returns every list item ordered by id.
func (r *itemRepository) FindAllItems(ctx context.Context) ([]models.ListItem, error) {
	query, args, err := buildSelectAllItemsQuery(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.FindAllItems", query, args...)
}

// FindItemsForList returns the items of one destination list. A list
// without items yields an empty slice, never an error.
func (r *itemRepository) FindItemsForList(ctx context.Context, listID int64) ([]models.ListItem, error) {
	query, args, err := buildSelectItemsForListQuery(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.FindItemsForList", query, args...)
}

// GetItem returns one item joined with the parent list's searched address
// and stay dates.
//
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(ctx, id)
	if err != nil {
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.ListItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&item.ID,
		&item.ListID,
		&item.Category,
		&item.Item,
		&item.Qty,
		&item.SearchedAddress,
		&item.ArrivalDate,
		&item.DepartureDate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ListItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.GetItem").Int64("id", id).Msg("error: scanning error")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateItem compiles the supplied partial update into a SET clause,
// appends the id as the identifying key, and returns the updated row via
// the UPDATE's RETURNING clause.
//
// Error handling:
//   - empty update set → [ErrNoUpdateData] from the clause builder.
//   - no matching row → [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, updates Updates) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	clause, err := updates.Compile(itemColumnNames)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("id", id).Msg("failed to compile update")
		return models.ListItem{}, err
	}

	query := fmt.Sprintf(updateItemBase, clause.Fragment(), clause.Next())
	args := append(clause.Args, id)

	var item models.ListItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.ListID, &item.Category, &item.Item, &item.Qty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ListItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("id", id).Msg("error: scanning error")
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// DeleteItem removes the item row.
//
// Returns [ErrItemNotFound] when no row was removed.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("id", id).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// queryItems executes a multi-row item query and scans the result set.
func (r *itemRepository) queryItems(ctx context.Context, caller, query string, args ...any) ([]models.ListItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ListItem, 0, 16)

	for rows.Next() {
		var i models.ListItem
		if scanErr := rows.Scan(&i.ID, &i.ListID, &i.Category, &i.Item, &i.Qty); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, i)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
