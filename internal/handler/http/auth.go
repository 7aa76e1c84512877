package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// credentialsRequest is the body of the token route.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userRequest is the body of the registration and admin-create routes.
// It carries the account fields plus the plaintext password, which the
// [models.User] JSON shape deliberately excludes.
type userRequest struct {
	models.User
	Password string `json:"password"`
}

// token authenticates a username/password pair and issues a fresh JWT.
//
//	POST /auth/token
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}

	authenticatedUser, err := h.services.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, authenticatedUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
}

// register creates a new non-admin account and issues its first token.
// The is_admin flag is ignored on this public route; promoting an account
// requires an administrator.
//
//	POST /auth/register
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request userRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, r, ErrInvalidJSONBody)
		return
	}
	request.User.IsAdmin = false

	registeredUser, err := h.services.AuthService.Register(ctx, request.User, request.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: registeredUser, Token: token.String()}, http.StatusCreated)
}
