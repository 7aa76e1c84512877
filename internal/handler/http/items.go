package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// listItems returns every packing item across all lists.
//
//	GET /items (admin)
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse{Items: items}, http.StatusOK)
}

// listListItems returns one list's packing items. A list without items
// answers with an empty collection, not an error.
//
//	GET /lists/{id}/items
func (h *Handler) listListItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	items, err := h.services.ItemService.FindAllForList(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse{Items: items}, http.StatusOK)
}

// createItem adds a packing item to one list.
//
//	POST /lists/{id}/items
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	log := logger.FromRequest(r)

	var item models.ListItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	createdItem, err := h.services.ItemService.Create(r.Context(), id, item)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Item: createdItem}, http.StatusCreated)
}

// getItem returns one packing item enriched with its parent list's address
// and stay dates.
//
//	GET /items/{id}
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	foundItem, err := h.services.ItemService.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Item: foundItem}, http.StatusOK)
}

// updateItem applies a partial update to the item.
//
//	PATCH /items/{id}
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	log := logger.FromRequest(r)

	var update models.ListItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	updatedItem, err := h.services.ItemService.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Item: updatedItem}, http.StatusOK)
}

// deleteItem removes the item.
//
//	DELETE /items/{id}
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.ItemService.Remove(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: id}, http.StatusOK)
}
