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

const mechanicColumns = `id, name, garage_name, location, phone, email, referral_code, created_at`

type MechanicRepository interface {
	List(ctx context.Context) ([]entity.Mechanic, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, mechanic *entity.Mechanic) error
	Update(ctx context.Context, id uuid.UUID, req entity.UpdateMechanicRequest) (*entity.Mechanic, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mechanicRepository struct {
	db *sqlx.DB
}

func NewMechanicRepository(db *sqlx.DB) MechanicRepository {
	return &mechanicRepository{db: db}
}

func (r *mechanicRepository) List(ctx context.Context) ([]entity.Mechanic, error) {
	mechanics := []entity.Mechanic{}
	query := `SELECT ` + mechanicColumns + ` FROM mechanics ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &mechanics, query); err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}
	return mechanics, nil
}

func (r *mechanicRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM mechanics WHERE referral_code = $1)`
	if err := r.db.GetContext(ctx, &exists, query, code); err != nil {
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}
	return exists, nil
}

func (r *mechanicRepository) Create(ctx context.Context, mechanic *entity.Mechanic) error {
	query := `
		INSERT INTO mechanics (name, garage_name, location, phone, email, referral_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + mechanicColumns

	err := r.db.GetContext(ctx, mechanic, query,
		mechanic.Name,
		mechanic.GarageName,
		mechanic.Location,
		mechanic.Phone,
		mechanic.Email,
		mechanic.ReferralCode,
	)
	if err != nil {
		return fmt.Errorf("failed to create mechanic: %w", constraintError(err))
	}
	return nil
}

func (r *mechanicRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateMechanicRequest) (*entity.Mechanic, error) {
	var b updateBuilder
	if req.Name != nil {
		b.set("name", *req.Name)
	}
	if req.GarageName != nil {
		b.set("garage_name", *req.GarageName)
	}
	if req.Location != nil {
		b.set("location", *req.Location)
	}
	if req.Phone != nil {
		b.set("phone", *req.Phone)
	}
	if req.Email != nil {
		b.set("email", *req.Email)
	}
	if req.ReferralCode != nil {
		b.set("referral_code", *req.ReferralCode)
	}

	query, args := b.query("mechanics", mechanicColumns, id)

	var mechanic entity.Mechanic
	if err := r.db.GetContext(ctx, &mechanic, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update mechanic: %w", constraintError(err))
	}
	return &mechanic, nil
}

func (r *mechanicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mechanics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mechanic: %w", err)
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
