package store

import (
	"context"
	"fmt"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertMessageQuery(message)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrPropertyNotFound
		}
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error inserting message")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *messageRepository) ListMessages(ctx context.Context, userID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListMessagesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error selecting messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err = rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.PropertyID, &m.Content, &m.SentAt); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error scanning message")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		m.SentAt = m.SentAt.UTC()
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
