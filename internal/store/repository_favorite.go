package store

import (
	"context"
	"fmt"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

// favoriteRepository stores the user ↔ property favorites relation. The
// UNIQUE(user_id, property_id) constraint is the only duplicate check.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite inserts the pair.
//
// Error handling:
//   - unique violation → [ErrFavoriteAlreadyExists].
//   - foreign-key violation → [ErrPropertyNotFound] (the user side is always
//     the authenticated caller).
func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite models.Favorite) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertFavoriteQuery(favorite)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			return ErrFavoriteAlreadyExists
		case ForeignKeyViolation:
			return ErrPropertyNotFound
		}
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error inserting favorite")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveFavorite deletes the pair; [ErrFavoriteNotFound] when absent.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteFavoriteQuery(userID, propertyID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error deleting favorite")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListFavoritesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error selecting favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var (
			fav      models.Favorite
			property models.Property
		)
		propertyDst, finish := propertyDest(&property)
		dest := append([]any{&fav.ID, &fav.UserID, &fav.PropertyID, &fav.AddedAt}, propertyDst...)

		if err = rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error scanning favorite")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		finish()
		fav.AddedAt = fav.AddedAt.UTC()
		fav.Property = &property

		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}
