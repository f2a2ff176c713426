package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,PostServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	UpsertProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error)
	GetOwnProfile(ctx context.Context, userID string) (models.Profile, error)
}

type PostService interface {
	CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
	LikePost(ctx context.Context, userID, postID string) (models.Likes, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Clock returns the current time. Services stamp records and check token
// expiry with it.
type Clock func() time.Time

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
