package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dev-connector/models"
)

var (
	userColumns    = []string{"user_id", "name", "email", "password", "created_at"}
	profileColumns = []string{
		"profile_id", "user_id", "status", "company", "website", "location",
		"bio", "githubusername", "skills", "created_at", "updated_at",
	}
	postColumns = []string{"post_id", "user_id", "name", "text", "created_at"}
	likeColumns = []string{"post_id", "user_id", "created_at"}
)

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.Password, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectUserQuery selects one user by a single column equality.
func (db *DB) buildSelectUserQuery(column, value string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertProfileQuery(profile models.Profile, skills string) (string, []any, error) {
	query, args, err := db.builder.
		Insert(profile.TableName()).
		Columns(profileColumns...).
		Values(
			profile.ProfileID,
			profile.UserID,
			profile.Status,
			profile.Company,
			profile.Website,
			profile.Location,
			profile.Bio,
			profile.GitHubUsername,
			skills,
			profile.CreatedAt,
			profile.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildSelectProfileQuery(userID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(profileColumns...).
		From(models.Profile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery writes only the supplied fields of update and
// returns the resulting row.
func (db *DB) buildUpdateProfileQuery(userID string, update models.ProfileUpdate, skills *string, updatedAt time.Time) (string, []any, error) {
	builder := db.builder.
		Update(models.Profile{}.TableName()).
		Set("updated_at", updatedAt)

	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Company != nil {
		builder = builder.Set("company", *update.Company)
	}
	if update.Website != nil {
		builder = builder.Set("website", *update.Website)
	}
	if update.Location != nil {
		builder = builder.Set("location", *update.Location)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.GitHubUsername != nil {
		builder = builder.Set("githubusername", *update.GitHubUsername)
	}
	if skills != nil {
		builder = builder.Set("skills", *skills)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertPostQuery(post models.Post) (string, []any, error) {
	query, args, err := db.builder.
		Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.PostID, post.UserID, post.Name, post.Text, post.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPostsQuery selects posts newest first. With no ids every post
// is selected.
func (db *DB) buildSelectPostsQuery(postIDs ...string) (string, []any, error) {
	builder := db.builder.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at DESC", "post_id DESC")

	if len(postIDs) > 0 {
		builder = builder.Where(sq.Eq{"post_id": postIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeletePostQuery(postID, userID string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertLikeQuery(postID string, like models.Like) (string, []any, error) {
	query, args, err := db.builder.
		Insert(like.TableName()).
		Columns(likeColumns...).
		Values(postID, like.UserID, like.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectLikesQuery selects the likes of the given posts, most recently
// inserted first.
func (db *DB) buildSelectLikesQuery(postIDs []string) (string, []any, error) {
	query, args, err := db.builder.
		Select(likeColumns...).
		From(models.Like{}.TableName()).
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy(db.likeSeq + " DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
