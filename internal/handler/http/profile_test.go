package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dev-connector/internal/service"
	"github.com/MKhiriev/go-dev-connector/models"
)

func TestUpsertProfile(t *testing.T) {
	router, m := newTestRouter(t)
	status := "Developer"

	m.profiles.EXPECT().UpsertProfile(gomock.Any(), testUser, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u models.ProfileUpdate) (models.Profile, error) {
			require.NotNil(t, u.Status)
			require.NotNil(t, u.Skills)
			assert.Nil(t, u.Company)
			assert.Equal(t, models.Skills{"go", "sql", "docker"}, *u.Skills)
			return models.Profile{ProfileID: "p1", UserID: testUser, Status: &status, Skills: *u.Skills}, nil
		},
	)

	rec := doRequest(t, router, http.MethodPost, "/api/profile", `{"status":"Developer","skills":"go, sql ,docker"}`, goodToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skills":["go","sql","docker"]`)
	assert.NotContains(t, rec.Body.String(), `"company"`)
}

func TestUpsertProfile_Rejections(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/profile", `{}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token, authorization denied", decodeMsg(t, rec))
	})

	t.Run("skills of wrong type", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/api/profile", `{"skills":42}`, goodToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON was passed", decodeMsg(t, rec))
	})
}

func TestMyProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.profiles.EXPECT().GetOwnProfile(gomock.Any(), testUser).Return(models.Profile{ProfileID: "p1", UserID: testUser}, nil)

		rec := doRequest(t, router, http.MethodGet, "/api/profile/me", "", goodToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"skills":[]`)
	})

	t.Run("none yet", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.profiles.EXPECT().GetOwnProfile(gomock.Any(), testUser).Return(models.Profile{}, service.ErrProfileNotFound)

		rec := doRequest(t, router, http.MethodGet, "/api/profile/me", "", goodToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No profile found", decodeMsg(t, rec))
	})
}
