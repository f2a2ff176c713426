package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dev-connector/internal/service"
	"github.com/MKhiriev/go-dev-connector/internal/validators"
	"github.com/MKhiriev/go-dev-connector/models"
)

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","password":"secret"}`
	req := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret"}

	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantMsg    string
	}{
		{name: "success", body: body, callsSvc: true, wantStatus: http.StatusOK, wantMsg: "User registered successfully"},
		{name: "duplicate email", body: body, callsSvc: true, serviceErr: service.ErrUserAlreadyExists, wantStatus: http.StatusBadRequest, wantMsg: "User already exists"},
		{
			name:       "missing name",
			body:       body,
			callsSvc:   true,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Name is required",
		},
		{name: "storage failure", body: body, callsSvc: true, serviceErr: errors.New("connection reset"), wantStatus: http.StatusInternalServerError, wantMsg: "Server Error"},
		{name: "broken json", body: `{"name":`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid JSON was passed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			if tt.callsSvc {
				m.auth.EXPECT().RegisterUser(gomock.Any(), req).Return(models.User{UserID: testUser}, tt.serviceErr)
			}

			rec := doRequest(t, router, http.MethodPost, "/api/users/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decodeMsg(t, rec))
		})
	}
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, m := newTestRouter(t)
	user := models.User{UserID: testUser}

	m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "ada@example.com", Password: "secret"}).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt"}`, rec.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"x@y.z","password":"nope"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeMsg(t, rec))
	})

	t.Run("token signing fails", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: testUser}, nil)
		m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"email":"x@y.z","password":"p"}`, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Server Error", decodeMsg(t, rec))
	})

	t.Run("not json", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", `email=x`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON was passed", decodeMsg(t, rec))
	})
}

// ── me ───────────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	t.Run("returns user without password", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().GetUser(gomock.Any(), testUser).
			Return(models.User{UserID: testUser, Name: "Ada", Email: "ada@example.com", Password: "$2a$hash"}, nil)

		rec := doRequest(t, router, http.MethodGet, "/api/auth", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)
		assert.NotContains(t, rec.Body.String(), "hash")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("account deleted", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().GetUser(gomock.Any(), testUser).Return(models.User{}, service.ErrUserNotFound)

		rec := doRequest(t, router, http.MethodGet, "/api/auth", "", goodToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeMsg(t, rec))
	})
}
