package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/validators"
	"github.com/MKhiriev/go-dev-connector/models"
)

// AuthValidationService checks request bodies before they reach the
// wrapped AuthService. Failures wrap ErrInvalidDataProvided.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// PostValidationService checks new post bodies before they reach the
// wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, userID, req)
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) DeletePost(ctx context.Context, userID, postID string) error {
	return v.inner.DeletePost(ctx, userID, postID)
}

func (v *PostValidationService) LikePost(ctx context.Context, userID, postID string) (models.Likes, error) {
	return v.inner.LikePost(ctx, userID, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
