package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// pathID parses the named chi path parameter as a positive int64.
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// listLists returns every destination list across all accounts.
//
//	GET /lists (admin)
func (h *Handler) listLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.ListService.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListsResponse{Lists: lists}, http.StatusOK)
}

// listUserLists returns the destination lists owned by one account.
//
//	GET /users/{username}/lists (admin or self)
func (h *Handler) listUserLists(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	lists, err := h.services.ListService.FindAllForUser(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListsResponse{Lists: lists}, http.StatusOK)
}

// createList adds a destination list to one account.
//
//	POST /users/{username}/lists (admin or self)
func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	log := logger.FromRequest(r)

	var list models.DestinationList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	createdList, err := h.services.ListService.Create(r.Context(), username, list)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{List: createdList}, http.StatusCreated)
}

// getList returns one destination list with its packing items.
//
//	GET /lists/{id}
func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	foundList, err := h.services.ListService.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{List: foundList}, http.StatusOK)
}

// updateList applies a partial update to the list.
//
//	PATCH /lists/{id}
func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	log := logger.FromRequest(r)

	var update models.DestinationListUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	updatedList, err := h.services.ListService.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{List: updatedList}, http.StatusOK)
}

// deleteList removes the list and its items.
//
//	DELETE /lists/{id}
func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.ListService.Remove(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: id}, http.StatusOK)
}
