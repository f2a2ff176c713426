package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// The token is read from the "x-auth-token" header and verified via
// [service.AuthService.ParseToken]. On success the user's id is stored in
// the request context under [utils.UserIDCtxKey].
//
// Rejections answer 401 with one of two messages:
//   - "No token, authorization denied" when the header is absent or blank.
//   - "Token is not valid" for any verification failure.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := strings.TrimSpace(r.Header.Get(authTokenHeader))
		if tokenString == "" {
			log.Debug().Err(ErrEmptyAuthToken).Send()
			utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the identity stored by [Handler.auth]. A
// missing identity is answered with 401 and reported as false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
	}
	return userID, ok
}
