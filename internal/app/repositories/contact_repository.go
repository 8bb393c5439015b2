package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/logger"
)

// ContactRepository handles contact message database operations
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new contact message and returns its id
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) (int64, error) {
	sql, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "message").
		Values(msg.Name, msg.Email, msg.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create contact message query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create contact message query")
		return 0, fmt.Errorf("error creating contact message: %w", err)
	}

	return id, nil
}

// GetAll retrieves all contact messages, newest-first
func (r *ContactRepository) GetAll(ctx context.Context) ([]*models.ContactMessage, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all contact messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all contact messages query")
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		msg := &models.ContactMessage{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}

	return messages, nil
}

// Count returns the number of contact messages
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "contact_messages")
}
