package http

import (
	"errors"
	"net/http"

	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/service"
	"github.com/jmalhoy/go-trip-planner/internal/store"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// errorStatusMap routes every recoverable error to its HTTP status.
// A duplicate username is a client mistake on this API, not a conflict,
// so it maps to 400 rather than 409. Unlisted errors fall through to 500
// with a generic message so internal detail never reaches a client.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	store.ErrNoUpdateData:          http.StatusBadRequest,
	store.ErrUsernameTaken:         http.StatusBadRequest,
	ErrInvalidJSONBody:             http.StatusBadRequest,
	ErrInvalidPathID:               http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrEmptyToken:                      http.StatusUnauthorized,
	ErrAccessDenied:                    http.StatusUnauthorized,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrListNotFound: http.StatusNotFound,
	store.ErrItemNotFound: http.StatusNotFound,
}

// respondError writes the single error envelope used by every route.
// For mapped errors the body carries the sentinel's message; everything
// else is reported as a bare internal server error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	for target, mappedStatus := range errorStatusMap {
		if errors.Is(err, target) {
			status = mappedStatus
			message = target.Error()
			break
		}
	}

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
	} else {
		log.Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error: models.ErrorBody{Message: message, Status: status},
	}, status)
}
