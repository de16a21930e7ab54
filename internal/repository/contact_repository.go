package repository

import (
	"context"
	"fmt"

	"chronokart/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// contactRepository implements the ContactRepository interface using PostgreSQL.
type contactRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewContactRepository creates a new PostgreSQL-backed contact repository.
func NewContactRepository(pool *pgxpool.Pool, logger zerolog.Logger) ContactRepository {
	return &contactRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "contact").Logger(),
	}
}

// Create inserts a new contact message.
func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("message_id", msg.ID.String()).Msg("failed to create contact message")
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	r.logger.Debug().Str("message_id", msg.ID.String()).Msg("contact message created")
	return nil
}

// List retrieves all contact messages, newest first.
func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query contact messages")
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan contact message row")
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating contact message rows")
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}
