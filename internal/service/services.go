package service

import (
	"time"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/store"
	"github.com/MKhiriev/go-dev-connector/internal/utils"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. Request validation is
// layered on top of the auth and post services.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	idGenerator := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, idGenerator, cfg.App, time.Now, logger),
	)
	postService := NewPostValidationService().Wrap(
		NewPostService(storages.PostRepository, storages.UserRepository, idGenerator, time.Now, logger),
	)

	return &Services{
		AuthService:    authService,
		ProfileService: NewProfileService(storages.ProfileRepository, idGenerator, time.Now, logger),
		PostService:    postService,
		AppInfoService: appInfoService,
	}, nil
}
