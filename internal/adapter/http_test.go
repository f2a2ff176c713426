// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter(t *testing.T) {
	t.Run("host without scheme", func(t *testing.T) {
		a, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: "localhost:5000/", Token: " t0 "}, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", a.(*httpServerAdapter).client.BaseURL)
		assert.Equal(t, "t0", a.Token())
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: "  "}, logger.Nop())
		require.ErrorIs(t, err, ErrEmptyServerURL)
	})
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "taken@example.com" {
			writeJSON(t, w, http.StatusBadRequest, models.Message{Msg: "User already exists"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.Message{Msg: "User registered successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "p"}))

	err := a.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "taken@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "User already exists")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "signed.jwt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "p"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", token)
	assert.Equal(t, "signed.jwt", a.Token())
}

func TestLogin_BadCredentialsKeepsOldToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.Message{Msg: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")

	_, err := a.Login(context.Background(), models.Credentials{Email: "x", Password: "y"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "old", a.Token())
}

// ── protected calls ──────────────────────────────────────────────────────────

// newAPIServer answers the protected routes for token "tok" and rejects
// everything else with 401.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	protect := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(authTokenHeader) != "tok" {
				writeJSON(t, w, http.StatusUnauthorized, models.Message{Msg: "No token, authorization denied"})
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("GET /api/auth", protect(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{UserID: "u1", Name: "Ada"})
	}))
	mux.HandleFunc("POST /api/profile", protect(func(w http.ResponseWriter, r *http.Request) {
		var update models.ProfileUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		writeJSON(t, w, http.StatusOK, models.Profile{ProfileID: "p1", Status: update.Status})
	}))
	mux.HandleFunc("GET /api/profile/me", protect(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.Message{Msg: "No profile found"})
	}))
	mux.HandleFunc("POST /api/posts", protect(func(w http.ResponseWriter, r *http.Request) {
		var req models.PostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, models.Post{PostID: "p1", Text: req.Text})
	}))
	mux.HandleFunc("GET /api/posts", protect(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Post{{PostID: "b"}, {PostID: "a"}})
	}))
	mux.HandleFunc("DELETE /api/posts/{id}", protect(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "p1" {
			writeJSON(t, w, http.StatusNotFound, models.Message{Msg: "Post not found"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.Message{Msg: "Post removed"})
	}))
	mux.HandleFunc("PUT /api/posts/like/{id}", protect(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Likes{{UserID: "u1"}, {UserID: "u2"}})
	}))
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "v9"})
	})

	return httptest.NewServer(mux)
}

func TestProtectedCalls(t *testing.T) {
	srv := newAPIServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	ctx := context.Background()

	user, err := a.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	status := "Developer"
	profile, err := a.UpsertProfile(ctx, models.ProfileUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, profile.Status)
	assert.Equal(t, status, *profile.Status)

	_, err = a.MyProfile(ctx)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "No profile found")

	post, err := a.CreatePost(ctx, models.PostRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Text)

	posts, err := a.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].PostID)

	require.NoError(t, a.DeletePost(ctx, "p1"))
	require.ErrorIs(t, a.DeletePost(ctx, "p2"), ErrNotFound)

	likes, err := a.LikePost(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v9", version)
}

func TestProtectedCalls_WithoutToken(t *testing.T) {
	srv := newAPIServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "No token, authorization denied")
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "json message", status: http.StatusInternalServerError, body: `{"msg":"Server Error"}`, wantErr: ErrInternalServerError, wantMsg: "Server Error"},
		{name: "plain body", status: http.StatusNotFound, body: "404 page not found", wantErr: ErrNotFound, wantMsg: "404 page not found"},
		{name: "empty body", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMsg: "Unauthorized"},
		{name: "unmapped status", status: http.StatusTeapot, body: `{"msg":"short and stout"}`, wantMsg: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
