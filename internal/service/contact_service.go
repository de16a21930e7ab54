package service

import (
	"context"
	"fmt"
	"time"

	"chronokart/internal/model"
	"chronokart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contactService implements ContactService.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      zerolog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository, logger zerolog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger.With().Str("service", "contact").Logger(),
	}
}

// Submit validates and stores a contact form submission.
func (s *contactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "contact request is nil")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "name is required")
	}
	if req.Email == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "email is required")
	}
	if req.Message == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "message is required")
	}

	msg := &model.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("message_id", msg.ID.String()).Msg("failed to store contact message")
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.logger.Info().Str("message_id", msg.ID.String()).Msg("contact message submitted")
	return msg, nil
}

// List retrieves all contact messages, newest first.
func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list contact messages")
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
