package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/mock"
	"github.com/MKhiriev/go-dev-connector/internal/store"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
	"github.com/MKhiriev/go-dev-connector/models"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockIDGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return NewAuthService(users, ids, testAppConfig, fixedClock, logger.Nop()), users, ids
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, users, ids := newTestAuthSvc(t)
	ctx := context.Background()
	req := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret"}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, req.Email).Return(models.User{}, store.ErrUserNotFound),
		ids.EXPECT().Generate().Return("u1"),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "u1", u.UserID)
				assert.Equal(t, "Ada", u.Name)
				assert.NotEqual(t, "secret", u.Password, "password must be stored hashed")
				assert.NoError(t, utils.ComparePassword(u.Password, "secret"))
				assert.Equal(t, fixedNow, u.CreatedAt)
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestAuthService_LongPasswordRegistersAndLogsIn(t *testing.T) {
	t.Parallel()
	svc, users, ids := newTestAuthSvc(t)
	ctx := context.Background()
	password := strings.Repeat("p", 80)

	var stored models.User
	users.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(models.User{}, store.ErrUserNotFound)
	ids.EXPECT().Generate().Return("u1")
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			return u, nil
		},
	)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: password})
	require.NoError(t, err)

	users.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(stored, nil).Times(2)

	user, err := svc.Login(ctx, models.Credentials{Email: "ada@example.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)

	_, err = svc.Login(ctx, models.Credentials{Email: "ada@example.com", Password: strings.Repeat("p", 79) + "q"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(models.User{UserID: "u0"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LosesUniqueRace(t *testing.T) {
	svc, users, ids := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	ids.EXPECT().Generate().Return("u1")
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "p"})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LookupFails(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)
	ctx := context.Background()
	dbErr := errors.New("db down")

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "p"})
	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: "u1", Email: "ada@example.com", Password: mustHash(t, "secret")}

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "correct password", password: "secret", found: stored},
		{name: "wrong password", password: "nope", found: stored, wantErr: ErrInvalidCredentials},
		{name: "unknown email", password: "secret", findErr: store.ErrUserNotFound, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthSvc(t)
			ctx := context.Background()

			users.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(tt.found, tt.findErr)

			user, err := svc.Login(ctx, models.Credentials{Email: "ada@example.com", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user.UserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.UserID)
		})
	}
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().FindUserByEmail(ctx, "ada@example.com").
		Return(models.User{UserID: "u1", Password: mustHash(t, "secret")}, nil)

	_, errUnknown := svc.Login(ctx, models.Credentials{Email: "ghost@example.com", Password: "x"})
	_, errWrong := svc.Login(ctx, models.Credentials{Email: "ada@example.com", Password: "x"})

	assert.Equal(t, errUnknown, errWrong)
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{UserID: "u1", Name: "Ada"}, nil)
	users.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, err = svc.GetUser(ctx, "gone")
	require.ErrorIs(t, err, ErrUserNotFound)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)
}

func TestAuthService_TokenExpiresByClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := fixedNow
	clock := func() time.Time { return now }
	svc := NewAuthService(mock.NewMockUserRepository(gomock.NewController(t)), nil, testAppConfig, clock, logger.Nop())

	token, err := svc.CreateToken(ctx, models.User{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), token.Claims.ExpiresAt.Unix())

	now = fixedNow.Add(59 * time.Minute)
	_, err = svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	now = fixedNow.Add(time.Hour + time.Second)
	_, err = svc.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("", "u1", fixedNow, time.Hour, "other-key")
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken("", "u1", fixedNow.Add(-2*time.Hour), time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":     "not-a-token",
		"foreign key": foreign.SignedString,
		"expired":     expired.SignedString,
		"empty":       "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
