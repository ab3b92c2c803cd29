package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

type ConversationRepository interface {
	FindLatestByPhone(ctx context.Context, phone string) (*entity.Conversation, error)
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, id uuid.UUID, messages entity.ChatMessages, escalated bool) error
	List(ctx context.Context, escalated *bool) ([]entity.Conversation, error)
}

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// FindLatestByPhone returns nil without error when the customer has no conversation yet.
func (r *conversationRepository) FindLatestByPhone(ctx context.Context, phone string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	query := `
		SELECT id, customer_phone, messages, escalated, created_at, updated_at
		FROM ai_conversations
		WHERE customer_phone = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &conversation, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return &conversation, nil
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	query := `
		INSERT INTO ai_conversations (customer_phone, messages, escalated)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	row := r.db.QueryRowxContext(ctx, query, conversation.CustomerPhone, conversation.Messages, conversation.Escalated)
	if err := row.Scan(&conversation.ID, &conversation.CreatedAt, &conversation.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *conversationRepository) Update(ctx context.Context, id uuid.UUID, messages entity.ChatMessages, escalated bool) error {
	query := `UPDATE ai_conversations SET messages = $1, escalated = $2, updated_at = NOW() WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, messages, escalated, id)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *conversationRepository) List(ctx context.Context, escalated *bool) ([]entity.Conversation, error) {
	conversations := []entity.Conversation{}

	query := `SELECT id, customer_phone, messages, escalated, created_at, updated_at FROM ai_conversations`
	var args []interface{}
	if escalated != nil {
		query += " WHERE escalated = $1"
		args = append(args, *escalated)
	}
	query += " ORDER BY updated_at DESC"

	if err := r.db.SelectContext(ctx, &conversations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}
