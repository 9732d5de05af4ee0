package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

// favoriteService relies on the store's unique constraint to reject
// duplicates, so concurrent adds of the same pair cannot both succeed.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	validator          validators.Validator
	ids                IDGenerator
	now                func() time.Time

	logger *logger.Logger
}

func NewFavoriteService(favorites store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favorites,
		validator:          validators.NewRequestValidator(),
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// AddFavorite returns store.ErrFavoriteAlreadyExists for a duplicate pair
// and store.ErrPropertyNotFound for an unknown listing.
func (s *favoriteService) AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	favorite := models.Favorite{
		ID:         s.ids.Generate(),
		UserID:     userID,
		PropertyID: strings.TrimSpace(req.PropertyID),
		AddedAt:    s.now().UTC(),
	}

	if err := s.favoriteRepository.AddFavorite(ctx, favorite); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*favoriteService.AddFavorite").Str("property_id", favorite.PropertyID).Msg("favorite not added")
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// RemoveFavorite returns store.ErrFavoriteNotFound when the pair is absent.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID string, req models.FavoriteRequest) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := s.favoriteRepository.RemoveFavorite(ctx, userID, strings.TrimSpace(req.PropertyID)); err != nil {
		return fmt.Errorf("error removing favorite: %w", err)
	}

	return nil
}

// ListFavorites never returns nil: no favorites is an empty list.
func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	favorites, err := s.favoriteRepository.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	return favorites, nil
}
