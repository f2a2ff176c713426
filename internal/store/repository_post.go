package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" and "post_likes" tables.
//
// A like is a (post_id, user_id) row; the composite primary key keeps one
// like per user per post even under concurrent requests.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with an empty like list.
// An unknown author yields [ErrUserNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertPostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if ClassifyError(err) == ClassForeignKeyViolation {
			return models.Post{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*postRepository.CreatePost").Str("user_id", post.UserID).Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	post.Likes = models.Likes{}
	return post, nil
}

// FindPostByID returns the post with its likes, newest first, or
// [ErrPostNotFound].
func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	posts, err := r.selectPosts(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}
	return posts[0], nil
}

// ListPosts returns every post, newest first, each with its likes attached.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	return r.selectPosts(ctx)
}

// DeletePost removes the post only if userID owns it. No matching row
// yields [ErrPostNotFound]; likes are removed by cascade.
func (r *postRepository) DeletePost(ctx context.Context, postID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeletePostQuery(postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Str("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// AddLike records like on the post. A repeated like by the same user
// yields [ErrPostAlreadyLiked]; a missing post yields [ErrPostNotFound].
func (r *postRepository) AddLike(ctx context.Context, postID string, like models.Like) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertLikeQuery(postID, like)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.AddLike").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		switch ClassifyError(err) {
		case ClassUniqueViolation:
			return ErrPostAlreadyLiked
		case ClassForeignKeyViolation:
			return ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.AddLike").Str("post_id", postID).Msg("error inserting like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// selectPosts loads posts (all of them when no ids are given) and then
// their likes with a single IN query.
func (r *postRepository) selectPosts(ctx context.Context, postIDs ...string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectPostsQuery(postIDs...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.selectPosts").Msg("failed to create query")
		return nil, err
	}

	var posts []models.Post
	err = r.withRetry(ctx, func() error {
		var queryErr error
		posts, queryErr = r.queryPosts(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.selectPosts").Msg("error selecting posts")
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.PostID
	}

	var likes map[string]models.Likes
	err = r.withRetry(ctx, func() error {
		var queryErr error
		likes, queryErr = r.queryLikes(ctx, ids)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.selectPosts").Msg("error selecting likes")
		return nil, err
	}

	for i := range posts {
		if postLikes, ok := likes[posts[i].PostID]; ok {
			posts[i].Likes = postLikes
		}
	}

	return posts, nil
}

func (r *postRepository) queryPosts(ctx context.Context, query string, args []any) ([]models.Post, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)
	for rows.Next() {
		post := models.Post{Likes: models.Likes{}}
		if err = rows.Scan(&post.PostID, &post.UserID, &post.Name, &post.Text, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// queryLikes groups the likes of postIDs by post, preserving the
// newest-first order of the query.
func (r *postRepository) queryLikes(ctx context.Context, postIDs []string) (map[string]models.Likes, error) {
	query, args, err := r.buildSelectLikesQuery(postIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	likes := make(map[string]models.Likes, len(postIDs))
	for rows.Next() {
		var (
			postID string
			like   models.Like
		)
		if err = rows.Scan(&postID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		likes[postID] = append(likes[postID], like)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return likes, nil
}
