package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error)
	ListAllPageURLs(ctx context.Context) ([]string, error)
}

type visitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visit.ID = uuid2.UUID(uuid.New())
	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO visits (id, page_url, user_agent, ip_address, visited_at)
		VALUES (:id, :page_url, :user_agent, :ip_address, :visited_at)`

	if _, err := r.db.NamedExecContext(ctx, query, visit); err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

func (r *visitRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM visits`); err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

func (r *visitRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM visits WHERE visited_at >= $1`
	if err := r.db.GetContext(ctx, &count, query, since.UTC()); err != nil {
		return 0, fmt.Errorf("failed to count visits since %s: %w", since.Format(time.RFC3339), err)
	}
	return count, nil
}

func (r *visitRepository) ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var timestamps []time.Time
	query := `SELECT visited_at FROM visits WHERE visited_at >= $1 ORDER BY visited_at ASC`
	if err := r.db.SelectContext(ctx, &timestamps, query, since.UTC()); err != nil {
		return nil, fmt.Errorf("failed to list visit timestamps: %w", err)
	}
	return timestamps, nil
}

// ListAllPageURLs returns one entry per visit, newest first. A NULL page_url
// comes back as an empty string.
func (r *visitRepository) ListAllPageURLs(ctx context.Context) ([]string, error) {
	var rows []sql.NullString
	query := `SELECT page_url FROM visits ORDER BY visited_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list visited pages: %w", err)
	}

	urls := make([]string, len(rows))
	for i, row := range rows {
		urls[i] = row.String
	}
	return urls, nil
}
