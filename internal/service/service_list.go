package service

import (
	"context"
	"fmt"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/models"
)

// listService is the concrete implementation of [ListService].
type listService struct {
	listRepository store.ListRepository
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewListService constructs a [ListService] backed by the given repositories.
// The item repository is used to hydrate a list's items on reads.
func NewListService(listRepository store.ListRepository, itemRepository store.ItemRepository, logger *logger.Logger) ListService {
	return &listService{
		listRepository: listRepository,
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// FindAll returns every destination list across all users.
func (l *listService) FindAll(ctx context.Context) ([]models.DestinationList, error) {
	lists, err := l.listRepository.FindAllLists(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("list search ended with error")
		return nil, fmt.Errorf("list search ended with error: %w", err)
	}

	return lists, nil
}

// FindAllForUser returns the destination lists owned by username.
func (l *listService) FindAllForUser(ctx context.Context, username string) ([]models.DestinationList, error) {
	lists, err := l.listRepository.FindListsForUser(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("list search for user failed")
		return nil, fmt.Errorf("list search for user failed: %w", err)
	}

	return lists, nil
}

// Get returns one destination list together with its packing items.
// A list with no items is returned with an empty slice, not an error.
func (l *listService) Get(ctx context.Context, id int64) (models.DestinationList, error) {
	log := logger.FromContext(ctx)

	foundList, err := l.listRepository.GetList(ctx, id)
	if err != nil {
		log.Err(err).Int64("list_id", id).Msg("list search by id failed")
		return models.DestinationList{}, fmt.Errorf("list search by id failed: %w", err)
	}

	items, err := l.itemRepository.FindItemsForList(ctx, id)
	if err != nil {
		log.Err(err).Int64("list_id", id).Msg("item search for list failed")
		return models.DestinationList{}, fmt.Errorf("item search for list failed: %w", err)
	}
	foundList.Items = items

	return foundList, nil
}

// Create persists a new destination list for username.
// [store.ErrUserNotFound] surfaces when the owner does not exist.
func (l *listService) Create(ctx context.Context, username string, list models.DestinationList) (models.DestinationList, error) {
	if list.SearchedAddress == "" {
		logger.FromContext(ctx).Error().Str("username", username).Msg("invalid list data provided")
		return models.DestinationList{}, ErrInvalidDataProvided
	}

	list.Username = username
	createdList, err := l.listRepository.CreateList(ctx, list)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("list creation ended with error")
		return models.DestinationList{}, fmt.Errorf("list creation ended with error: %w", err)
	}

	return createdList, nil
}

// Update applies a partial update to the list identified by id.
// Only the non-nil fields of data are written.
func (l *listService) Update(ctx context.Context, id int64, data models.DestinationListUpdate) (models.DestinationList, error) {
	var updates store.Updates
	if data.SearchedAddress != nil {
		updates = updates.Add("searched_address", *data.SearchedAddress)
	}
	if data.ArrivalDate != nil {
		updates = updates.Add("arrival_date", *data.ArrivalDate)
	}
	if data.DepartureDate != nil {
		updates = updates.Add("departure_date", *data.DepartureDate)
	}

	updatedList, err := l.listRepository.UpdateList(ctx, id, updates)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("list_id", id).Msg("list update ended with error")
		return models.DestinationList{}, fmt.Errorf("list update ended with error: %w", err)
	}

	return updatedList, nil
}

// Remove deletes the list and, through cascading foreign keys, its items.
func (l *listService) Remove(ctx context.Context, id int64) error {
	if err := l.listRepository.DeleteList(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("list_id", id).Msg("list deletion ended with error")
		return fmt.Errorf("list deletion ended with error: %w", err)
	}

	return nil
}
