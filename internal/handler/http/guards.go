package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/utils"
	"github.com/jmalhoy/go-trip-planner/models"
)

// policy is a pure authorization predicate evaluated once per request,
// after authentication and before dispatch. A nil return grants access;
// any error denies it.
type policy func(claims *models.TokenClaims, r *http.Request) error

// admin grants access to administrator accounts only.
func admin(claims *models.TokenClaims, _ *http.Request) error {
	if !claims.IsAdmin {
		return ErrAccessDenied
	}
	return nil
}

// adminOrSelf grants access to administrators and to the account whose
// username matches the given chi path parameter.
func adminOrSelf(pathParam string) policy {
	return func(claims *models.TokenClaims, r *http.Request) error {
		if claims.IsAdmin || claims.Username == chi.URLParam(r, pathParam) {
			return nil
		}
		return ErrAccessDenied
	}
}

// requires wraps a policy into route middleware. The claims placed in the
// context by the auth middleware are the sole authorization input; a request
// that somehow reaches a guarded route without claims is rejected outright.
func (h *Handler) requires(p policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				logger.FromRequest(r).Err(ErrAccessDenied).Msg("no claims in request context")
				respondError(w, r, ErrAccessDenied)
				return
			}

			if err := p(claims, r); err != nil {
				logger.FromRequest(r).Err(err).Str("username", claims.Username).Msg("route policy denied access")
				respondError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
