package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/models"
)

// profileRepository is the SQL implementation of [ProfileRepository] over
// the "profiles" table. Skills are stored as a JSON array in a text column.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProfile inserts profile. A second profile for the same user fails
// with [ErrProfileAlreadyExists]; an unknown user with [ErrUserNotFound].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	skills, err := encodeSkills(profile.Skills)
	if err != nil {
		return models.Profile{}, err
	}

	query, args, err := r.buildInsertProfileQuery(profile, skills)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		switch ClassifyError(err) {
		case ClassUniqueViolation:
			return models.Profile{}, ErrProfileAlreadyExists
		case ClassForeignKeyViolation:
			return models.Profile{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Str("user_id", profile.UserID).Msg("error inserting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if profile.Skills == nil {
		profile.Skills = models.Skills{}
	}
	return profile, nil
}

// FindProfileByUserID returns the profile owned by userID, or [ErrProfileNotFound].
func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectProfileQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Msg("failed to create query")
		return models.Profile{}, err
	}

	var profile models.Profile
	err = r.withRetry(ctx, func() error {
		var scanErr error
		profile, scanErr = scanProfile(r.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Str("user_id", userID).Msg("error scanning profile")
		return models.Profile{}, err
	}

	return profile, nil
}

// UpdateProfile writes the non-nil fields of update onto the profile of
// userID and returns the stored result. A missing profile yields
// [ErrProfileNotFound].
func (r *profileRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate, updatedAt time.Time) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var skills *string
	if update.Skills != nil {
		encoded, err := encodeSkills(*update.Skills)
		if err != nil {
			return models.Profile{}, err
		}
		skills = &encoded
	}

	query, args, err := r.buildUpdateProfileQuery(userID, update, skills, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	profile, err := scanProfile(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Str("user_id", userID).Msg("error updating profile")
		return models.Profile{}, err
	}

	return profile, nil
}

func scanProfile(row *sql.Row) (models.Profile, error) {
	var (
		profile models.Profile
		skills  string
	)

	err := row.Scan(
		&profile.ProfileID,
		&profile.UserID,
		&profile.Status,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Bio,
		&profile.GitHubUsername,
		&skills,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, err
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(skills), &profile.Skills); err != nil {
		return models.Profile{}, fmt.Errorf("%w: skills: %w", ErrEncodingColumn, err)
	}

	return profile, nil
}

func encodeSkills(skills models.Skills) (string, error) {
	b, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("%w: skills: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}
