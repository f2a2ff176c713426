package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/store"
	"github.com/MKhiriev/go-dev-connector/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	idGenerator       IDGenerator
	now               Clock
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, idGenerator IDGenerator, clock Clock, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		idGenerator:       idGenerator,
		now:               clock,
		logger:            logger,
	}
}

// UpsertProfile creates the caller's profile on first submission and
// otherwise overwrites only the supplied fields. A create that loses the
// race against a concurrent one falls back to an update, so a user never
// ends up with two profiles.
func (s *profileService) UpsertProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC()

	_, err := s.profileRepository.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		return s.update(ctx, userID, update)
	case !errors.Is(err, store.ErrProfileNotFound):
		log.Err(err).Str("func", "*profileService.UpsertProfile").Msg("profile search failed")
		return models.Profile{}, fmt.Errorf("profile search failed: %w", err)
	}

	profile := models.Profile{
		ProfileID: s.idGenerator.Generate(),
		UserID:    userID,
		Skills:    models.Skills{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	update.Apply(&profile)

	created, err := s.profileRepository.CreateProfile(ctx, profile)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, store.ErrProfileAlreadyExists):
		log.Debug().Str("user_id", userID).Msg("profile created concurrently, updating instead")
		return s.update(ctx, userID, update)
	case errors.Is(err, store.ErrUserNotFound):
		return models.Profile{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*profileService.UpsertProfile").Msg("profile creation failed")
		return models.Profile{}, fmt.Errorf("profile creation failed: %w", err)
	}
}

// GetOwnProfile returns the profile of userID or ErrProfileNotFound.
func (s *profileService) GetOwnProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profileRepository.FindProfileByUserID(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetOwnProfile").Msg("profile search failed")
		return models.Profile{}, fmt.Errorf("profile search failed: %w", err)
	}

	return profile, nil
}

func (s *profileService) update(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error) {
	profile, err := s.profileRepository.UpdateProfile(ctx, userID, update, s.now().UTC())
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.update").Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return profile, nil
}
