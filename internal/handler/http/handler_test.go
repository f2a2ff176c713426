package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/mock"
	"github.com/MKhiriev/go-dev-connector/internal/service"
	"github.com/MKhiriev/go-dev-connector/models"
)

const (
	goodToken = "good.token"
	testUser  = "u1"
)

type testServices struct {
	auth     *mock.MockAuthService
	profiles *mock.MockProfileService
	posts    *mock.MockPostService
	info     *mock.MockAppInfoService
}

// newTestRouter builds the full router over mocked services. goodToken
// resolves to testUser; any other token is rejected.
func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testServices{
		auth:     mock.NewMockAuthService(ctrl),
		profiles: mock.NewMockProfileService(ctrl),
		posts:    mock.NewMockPostService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
	}

	m.auth.EXPECT().ParseToken(gomock.Any(), goodToken).
		Return(models.Token{UserID: testUser}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(goodToken)).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		ProfileService: m.profiles,
		PostService:    m.posts,
		AppInfoService: m.info,
	}, config.Server{}, logger.Nop())

	return h.Init(), m
}

func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Msg
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	h := NewHandler(svcs, config.Server{RequestTimeout: 3 * time.Second}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestStatusFromError(t *testing.T) {
	for target, status := range errorStatusMap {
		msg, ok := errorMessageMap[target]
		require.True(t, ok, "no message for %v", target)

		gotStatus, gotMsg := statusFromError(target)
		assert.Equal(t, status, gotStatus)
		assert.Equal(t, msg, gotMsg)
	}

	status, msg := statusFromError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server Error", msg)
}
