// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the dev-connector REST API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// mapped by mapHTTPError onto the sentinel errors in errors.go, so callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the dev-connector server.
// Implementations attach the session token to every protected call.
type ServerAdapter interface {
	// SetToken stores the session token used by subsequent protected calls.
	SetToken(token string)

	// Token returns the stored session token, or "" if none is set.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a session token, stores it via
	// SetToken and returns it.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	UpsertProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	MyProfile(ctx context.Context) (models.Profile, error)

	CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error)

	// ListPosts returns the feed, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// DeletePost removes one of the caller's posts.
	DeletePost(ctx context.Context, postID string) error

	// LikePost likes a post and returns its like list, newest first.
	LikePost(ctx context.Context, postID string) (models.Likes, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
