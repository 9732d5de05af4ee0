package service

import (
	"context"
	"fmt"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

// userService implements the admin user management. Callers are expected
// to have checked the admin capability already.
type userService struct {
	userRepository  store.UserRepository
	propertyStorage store.PropertyStorage
	photoStorage    store.PhotoStorage
	validator       validators.Validator

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, properties store.PropertyStorage, photos store.PhotoStorage, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  users,
		propertyStorage: properties,
		photoStorage:    photos,
		validator:       validators.NewRequestValidator(),
		logger:          logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// ChangeRole sets the role of userID. The value must be "user" or "admin".
func (s *userService) ChangeRole(ctx context.Context, userID string, req models.ChangeRoleRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateRole(ctx, userID, models.Role(req.Role))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ChangeRole").Str("user_id", userID).Msg("error changing role")
		return models.User{}, fmt.Errorf("error changing role: %w", err)
	}

	return user, nil
}

// DeleteUser removes the account with everything it owns. Photo files of
// the removed listings are deleted after the commit; failing to delete them
// is logged and does not fail the operation.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	photos, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if len(photos) > 0 {
		if err = s.photoStorage.Delete(ctx, photos...); err != nil {
			log.Warn().Err(err).Str("func", "*userService.DeleteUser").Int("photos", len(photos)).Msg("orphaned photo files left behind")
		}
	}
	s.propertyStorage.InvalidateListings(ctx)

	return nil
}
