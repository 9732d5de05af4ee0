package service

import (
	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	PropertyService PropertyService
	FavoriteService FavoriteService
	MessageService  MessageService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	propertyService := NewPropertyValidationService().
		Wrap(NewPropertyService(storages.PropertyStorage, storages.PhotoStorage, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionStore, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, storages.PropertyStorage, storages.PhotoStorage, logger),
		PropertyService: propertyService,
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, logger),
		MessageService:  NewMessageService(storages.MessageRepository, storages.PropertyStorage, logger),
		AppInfoService:  appInfoService,
	}, nil
}
