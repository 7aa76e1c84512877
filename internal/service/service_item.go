package service

import (
	"context"
	"fmt"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/models"
)

// itemService is the concrete implementation of [ItemService].
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an [ItemService] backed by the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// FindAll returns every packing item across all lists.
func (i *itemService) FindAll(ctx context.Context) ([]models.ListItem, error) {
	items, err := i.itemRepository.FindAllItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("item search ended with error")
		return nil, fmt.Errorf("item search ended with error: %w", err)
	}

	return items, nil
}

// FindAllForList returns the packing items belonging to one list.
func (i *itemService) FindAllForList(ctx context.Context, listID int64) ([]models.ListItem, error) {
	items, err := i.itemRepository.FindItemsForList(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("list_id", listID).Msg("item search for list failed")
		return nil, fmt.Errorf("item search for list failed: %w", err)
	}

	return items, nil
}

// Get returns one packing item enriched with its parent list's destination
// address and travel dates.
func (i *itemService) Get(ctx context.Context, id int64) (models.ListItem, error) {
	foundItem, err := i.itemRepository.GetItem(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item search by id failed")
		return models.ListItem{}, fmt.Errorf("item search by id failed: %w", err)
	}

	return foundItem, nil
}

// Create persists a new packing item under the given list.
// [store.ErrListNotFound] surfaces when the parent list does not exist.
func (i *itemService) Create(ctx context.Context, listID int64, item models.ListItem) (models.ListItem, error) {
	if item.Item == "" {
		logger.FromContext(ctx).Error().Int64("list_id", listID).Msg("invalid item data provided")
		return models.ListItem{}, ErrInvalidDataProvided
	}

	item.ListID = listID
	createdItem, err := i.itemRepository.CreateItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("list_id", listID).Msg("item creation ended with error")
		return models.ListItem{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// Update applies a partial update to the item identified by id.
// Only the non-nil fields of data are written.
func (i *itemService) Update(ctx context.Context, id int64, data models.ListItemUpdate) (models.ListItem, error) {
	var updates store.Updates
	if data.Category != nil {
		updates = updates.Add("category", *data.Category)
	}
	if data.Item != nil {
		updates = updates.Add("item", *data.Item)
	}
	if data.Qty != nil {
		updates = updates.Add("qty", *data.Qty)
	}

	updatedItem, err := i.itemRepository.UpdateItem(ctx, id, updates)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item update ended with error")
		return models.ListItem{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updatedItem, nil
}

// Remove deletes the item.
func (i *itemService) Remove(ctx context.Context, id int64) error {
	if err := i.itemRepository.DeleteItem(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}
