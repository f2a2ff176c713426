// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
	"github.com/MKhiriev/go-dev-connector/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createPost").Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// listPosts returns every post, newest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// deletePost removes the post named by the {id} path segment. Only its
// author may do so.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgPostRemoved, http.StatusOK)
}

// likePost answers with the post's like list after the caller's like was
// added.
func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	likes, err := h.services.PostService.LikePost(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, likes, http.StatusOK)
}
