package store

import (
	"context"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

// propertyStorage is the [PropertyStorage] implementation: reads of whole
// listing pages go through the cache, everything else hits the repository.
type propertyStorage struct {
	repo   PropertyRepository
	cache  PropertyCache
	logger *logger.Logger
}

func NewPropertyStorage(repo PropertyRepository, cache PropertyCache, logger *logger.Logger) PropertyStorage {
	return &propertyStorage{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *propertyStorage) CreateProperty(ctx context.Context, property models.Property) error {
	if err := s.repo.CreateProperty(ctx, property); err != nil {
		return err
	}

	s.InvalidateListings(ctx)
	return nil
}

func (s *propertyStorage) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	return s.repo.GetProperty(ctx, propertyID)
}

func (s *propertyStorage) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.cached(ctx, listingsAllPage, s.repo.ListProperties)
}

func (s *propertyStorage) ListPropertiesByCategory(ctx context.Context, category models.Category) ([]models.Property, error) {
	return s.cached(ctx, listingsCategoryPage(category), func(ctx context.Context) ([]models.Property, error) {
		return s.repo.ListPropertiesByCategory(ctx, category)
	})
}

func (s *propertyStorage) InvalidateListings(ctx context.Context) {
	s.cache.Invalidate(ctx)
}

// cached serves page from the generation current before the load, so rows
// loaded concurrently with an invalidation land in a generation nobody reads.
func (s *propertyStorage) cached(ctx context.Context, page string, load func(context.Context) ([]models.Property, error)) ([]models.Property, error) {
	generation, ok := s.cache.Generation(ctx)
	if !ok {
		return load(ctx)
	}

	key := listingsKey(generation, page)
	if properties, ok := s.cache.GetList(ctx, key); ok {
		return properties, nil
	}

	properties, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, key, properties)
	return properties, nil
}
