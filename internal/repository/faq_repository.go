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

type FAQRepository interface {
	List(ctx context.Context) ([]entity.FAQ, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error)
	Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error)
	Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db *sqlx.DB
}

func NewFAQRepository(db *sqlx.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) List(ctx context.Context) ([]entity.FAQ, error) {
	faqs := []entity.FAQ{}
	query := `SELECT id, question, answer, category, created_at FROM faqs ORDER BY category ASC NULLS LAST, created_at ASC`
	if err := r.db.SelectContext(ctx, &faqs, query); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	var faq entity.FAQ
	query := `SELECT id, question, answer, category, created_at FROM faqs WHERE id = $1`
	if err := r.db.GetContext(ctx, &faq, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return &faq, nil
}

func (r *faqRepository) Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error) {
	var faq entity.FAQ
	query := `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING id, question, answer, category, created_at`
	if err := r.db.GetContext(ctx, &faq, query, req.Question, req.Answer, req.Category); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	return &faq, nil
}

func (r *faqRepository) Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error) {
	var faq entity.FAQ
	query := `
		UPDATE faqs SET question = $1, answer = $2, category = $3
		WHERE id = $4
		RETURNING id, question, answer, category, created_at`
	if err := r.db.GetContext(ctx, &faq, query, req.Question, req.Answer, req.Category, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}
	return &faq, nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
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
