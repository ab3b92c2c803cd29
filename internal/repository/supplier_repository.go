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

const supplierColumns = `id, supplier_name, phone, location, specialization, trust_score, email, created_at`

type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, req entity.CreateSupplierRequest) (*entity.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, req entity.UpdateSupplierRequest) (*entity.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepository struct {
	db *sqlx.DB
}

func NewSupplierRepository(db *sqlx.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	suppliers := []entity.Supplier{}
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY trust_score DESC, created_at ASC`
	if err := r.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) Create(ctx context.Context, req entity.CreateSupplierRequest) (*entity.Supplier, error) {
	var supplier entity.Supplier
	query := `
		INSERT INTO suppliers (supplier_name, phone, location, specialization, trust_score, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + supplierColumns

	err := r.db.GetContext(ctx, &supplier, query,
		req.SupplierName,
		req.Phone,
		req.Location,
		req.Specialization,
		req.TrustScore,
		req.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

func (r *supplierRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateSupplierRequest) (*entity.Supplier, error) {
	var b updateBuilder
	if req.SupplierName != nil {
		b.set("supplier_name", *req.SupplierName)
	}
	if req.Phone != nil {
		b.set("phone", *req.Phone)
	}
	if req.Location != nil {
		b.set("location", *req.Location)
	}
	if req.Specialization != nil {
		b.set("specialization", *req.Specialization)
	}
	if req.TrustScore != nil {
		b.set("trust_score", *req.TrustScore)
	}
	if req.Email != nil {
		b.set("email", *req.Email)
	}

	query, args := b.query("suppliers", supplierColumns, id)

	var supplier entity.Supplier
	if err := r.db.GetContext(ctx, &supplier, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return &supplier, nil
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
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
