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

// messageService lets users contact the agent of a listing.
type messageService struct {
	messageRepository store.MessageRepository
	propertyStorage   store.PropertyStorage
	validator         validators.Validator
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewMessageService(messages store.MessageRepository, properties store.PropertyStorage, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messages,
		propertyStorage:   properties,
		validator:         validators.NewRequestValidator(),
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// SendMessage addresses the message to the listing's agent.
func (s *messageService) SendMessage(ctx context.Context, senderID string, req models.MessageRequest) (models.Message, error) {
	if senderID == "" {
		return models.Message{}, ErrUnauthenticated
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Message{}, err
	}

	property, err := s.propertyStorage.GetProperty(ctx, strings.TrimSpace(req.PropertyID))
	if err != nil {
		return models.Message{}, fmt.Errorf("error loading property: %w", err)
	}
	if property.AgentID == senderID {
		return models.Message{}, ErrOwnListing
	}

	message := models.Message{
		ID:         s.ids.Generate(),
		SenderID:   senderID,
		ReceiverID: property.AgentID,
		PropertyID: property.ID,
		Content:    strings.TrimSpace(req.Content),
		SentAt:     s.now().UTC(),
	}

	if err = s.messageRepository.CreateMessage(ctx, message); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.SendMessage").Msg("error storing message")
		return models.Message{}, fmt.Errorf("error storing message: %w", err)
	}

	return message, nil
}

func (s *messageService) ListMessages(ctx context.Context, userID string) ([]models.Message, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	messages, err := s.messageRepository.ListMessages(ctx, userID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}
