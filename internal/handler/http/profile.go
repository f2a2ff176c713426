package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
	"github.com/MKhiriev/go-dev-connector/models"
)

// upsertProfile creates the caller's profile or overwrites the supplied
// fields of the existing one.
func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.upsertProfile").Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpsertProfile(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) myProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetOwnProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
