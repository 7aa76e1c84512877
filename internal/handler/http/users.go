package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// listUsers returns every account's public fields.
//
//	GET /users (admin)
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.FindAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

// createUser registers an account on behalf of an administrator. Unlike the
// public registration route, the is_admin flag in the body is honored.
//
//	POST /users (admin)
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request userRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	createdUser, err := h.services.AuthService.Register(ctx, request.User, request.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, createdUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: createdUser, Token: token.String()}, http.StatusCreated)
}

// getUser returns one account with its destination lists.
//
//	GET /users/{username} (admin or self)
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	foundUser, err := h.services.UserService.Get(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: foundUser}, http.StatusOK)
}

// updateUser applies a partial update to the account.
//
//	PATCH /users/{username} (admin or self)
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	log := logger.FromRequest(r)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	updatedUser, err := h.services.UserService.Update(r.Context(), username, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: updatedUser}, http.StatusOK)
}

// deleteUser removes the account and everything it owns.
//
//	DELETE /users/{username} (admin or self)
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.services.UserService.Remove(r.Context(), username); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: username}, http.StatusOK)
}
