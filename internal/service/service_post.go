package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/store"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
	"github.com/MKhiriev/go-dev-connector/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	idGenerator    IDGenerator
	now            Clock
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, idGenerator IDGenerator, clock Clock, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		idGenerator:    idGenerator,
		now:            clock,
		logger:         logger,
	}
}

// CreatePost stores a post authored by userID. The author's current name
// is copied onto the post.
func (s *postService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	author, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Post{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Msg("author search failed")
		return models.Post{}, fmt.Errorf("author search failed: %w", err)
	}

	post := models.Post{
		PostID:    s.idGenerator.Generate(),
		UserID:    author.UserID,
		Name:      author.Name,
		Text:      req.Text,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Post{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// ListPosts returns all posts, newest first.
func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.ListPosts").Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// DeletePost removes postID if userID authored it.
//
// Errors: ErrPostNotFound when the post does not exist (including ids that
// are not well-formed), ErrNotPostOwner when another user authored it.
func (s *postService) DeletePost(ctx context.Context, userID, postID string) error {
	log := logger.FromContext(ctx)

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		log.Warn().Str("user_id", userID).Str("post_id", postID).Msg("attempt to delete someone else's post")
		return ErrNotPostOwner
	}

	err = s.postRepository.DeletePost(ctx, postID, userID)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.DeletePost").Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// LikePost records a like by userID and returns the post's likes, newest
// first. A user may like a post once; the storage key enforces this even
// for concurrent requests.
func (s *postService) LikePost(ctx context.Context, userID, postID string) (models.Likes, error) {
	log := logger.FromContext(ctx)

	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.LikedBy(userID) {
		return nil, ErrPostAlreadyLiked
	}

	like := models.Like{UserID: userID, CreatedAt: s.now().UTC()}

	err = s.postRepository.AddLike(ctx, postID, like)
	switch {
	case errors.Is(err, store.ErrPostAlreadyLiked):
		return nil, ErrPostAlreadyLiked
	case errors.Is(err, store.ErrPostNotFound):
		return nil, ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", "*postService.LikePost").Msg("like creation failed")
		return nil, fmt.Errorf("like creation failed: %w", err)
	}

	updated, err := s.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		// the like is stored; fall back to the list read before it
		log.Warn().Err(err).Str("post_id", postID).Msg("re-reading liked post failed")
		return post.Likes.Prepend(like), nil
	}

	return updated.Likes, nil
}

func (s *postService) findPost(ctx context.Context, postID string) (models.Post, error) {
	if !utils.IsValidID(postID) {
		return models.Post{}, ErrPostNotFound
	}

	post, err := s.postRepository.FindPostByID(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.findPost").Msg("post search failed")
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}

	return post, nil
}
