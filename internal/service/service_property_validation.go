package service

import (
	"context"

	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

// PropertyValidationService checks publish drafts before they reach the
// wrapped PropertyService. Reads pass straight through.
type PropertyValidationService struct {
	inner     PropertyService
	validator validators.Validator
}

func NewPropertyValidationService() PropertyServiceWrapper {
	return &PropertyValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PropertyValidationService) Publish(ctx context.Context, ownerID string, draft models.PropertyDraft) (models.Property, error) {
	if ownerID == "" {
		return models.Property{}, ErrUnauthenticated
	}

	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Property{}, err
	}

	return v.inner.Publish(ctx, ownerID, draft)
}

func (v *PropertyValidationService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return v.inner.ListProperties(ctx)
}

func (v *PropertyValidationService) ListPropertiesByCategory(ctx context.Context, category string) ([]models.Property, error) {
	return v.inner.ListPropertiesByCategory(ctx, category)
}

func (v *PropertyValidationService) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	return v.inner.GetProperty(ctx, propertyID)
}

func (v *PropertyValidationService) Wrap(wrapped PropertyService) PropertyService {
	v.inner = wrapped
	return v
}
