package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

// propertyRepository is the SQL-backed implementation of
// [PropertyRepository] over the "properties" table. Photos and equipment are
// stored as JSON arrays.
type propertyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProperty inserts a listing. A foreign-key violation means the agent
// no longer exists and is reported as [ErrUserNotFound].
func (r *propertyRepository) CreateProperty(ctx context.Context, property models.Property) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertPropertyQuery(property)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.CreateProperty").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*propertyRepository.CreateProperty").Msg("error inserting property")
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *propertyRepository) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetPropertyQuery(propertyID)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.GetProperty").Msg("error building query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	property, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, ErrPropertyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.GetProperty").Msg("error scanning property")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

func (r *propertyRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	return r.list(ctx, nil)
}

func (r *propertyRepository) ListPropertiesByCategory(ctx context.Context, category models.Category) ([]models.Property, error) {
	return r.list(ctx, &category)
}

func (r *propertyRepository) list(ctx context.Context, category *models.Category) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListPropertiesQuery(category)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.list").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.list").Msg("error selecting properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			log.Err(err).Str("func", "*propertyRepository.list").Msg("error scanning property")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		properties = append(properties, property)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return properties, nil
}

// propertyDest returns scan destinations for every column in
// propertyColumns order. finish must be called after a successful scan.
func propertyDest(p *models.Property) (dest []any, finish func()) {
	var (
		category  string
		photos    stringList
		equipment stringList
	)
	dest = []any{
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Surface, &p.Rooms, &p.Type, &category,
		&p.Address, &photos, &p.Diagnostics, &equipment, &p.PublishedAt, &p.AgentID, &p.IsFeatured,
	}
	finish = func() {
		p.Category = models.Category(category)
		p.Photos = []string(photos)
		p.Equipment = []string(equipment)
		p.PublishedAt = p.PublishedAt.UTC()
	}
	return dest, finish
}

func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	dest, finish := propertyDest(&p)
	if err := row.Scan(dest...); err != nil {
		return models.Property{}, err
	}
	finish()

	return p, nil
}
