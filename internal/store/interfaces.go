package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dev-connector/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ProfileRepository persists the one-per-user developer profiles.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate, updatedAt time.Time) (models.Profile, error)
}

// PostRepository persists posts and their likes.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
	AddLike(ctx context.Context, postID string, like models.Like) error
}
