package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/service"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
	"github.com/MKhiriev/go-dev-connector/internal/validators"
)

// Each service error wraps at most one key of these maps. Validation
// failures wrap service.ErrInvalidDataProvided together with the concrete
// validator error, so only the latter is listed.
var errorStatusMap = map[error]int{
	service.ErrUserAlreadyExists:       http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrProfileNotFound:         http.StatusBadRequest,
	service.ErrPostNotFound:            http.StatusNotFound,
	service.ErrNotPostOwner:            http.StatusUnauthorized,
	service.ErrPostAlreadyLiked:        http.StatusBadRequest,

	validators.ErrEmptyName:     http.StatusBadRequest,
	validators.ErrEmptyEmail:    http.StatusBadRequest,
	validators.ErrEmptyPassword: http.StatusBadRequest,
	validators.ErrEmptyText:     http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrUserAlreadyExists:       "User already exists",
	service.ErrInvalidCredentials:      "Invalid credentials",
	service.ErrUserNotFound:            "User not found",
	service.ErrTokenIsExpiredOrInvalid: msgInvalidToken,
	service.ErrProfileNotFound:         "No profile found",
	service.ErrPostNotFound:            "Post not found",
	service.ErrNotPostOwner:            "Unauthorized",
	service.ErrPostAlreadyLiked:        "Post already liked",

	validators.ErrEmptyName:     "Name is required",
	validators.ErrEmptyEmail:    "Email is required",
	validators.ErrEmptyPassword: "Password is required",
	validators.ErrEmptyText:     "Text is required",
}

func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, errorMessageMap[target]
		}
	}
	return http.StatusInternalServerError, msgServerError
}

// writeError renders err as {"msg": ...}. Unclassified errors become a 500
// whose body never carries internal details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, msg := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, msg, status)
}
