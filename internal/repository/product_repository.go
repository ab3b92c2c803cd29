package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

const productColumns = `id, name, category, price, car_brand, car_model, stock_status, supplier_id,
	image_url, image_urls, description, featured, created_at, updated_at`

type ProductRepository interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, req entity.CreateProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, req entity.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	products := []entity.Product{}

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *filter.Category)
		argIndex++
	}

	if filter.Brand != nil {
		conditions = append(conditions, fmt.Sprintf("car_brand = $%d", argIndex))
		args = append(args, *filter.Brand)
		argIndex++
	}

	if filter.Model != nil {
		conditions = append(conditions, fmt.Sprintf("car_model = $%d", argIndex))
		args = append(args, *filter.Model)
		argIndex++
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+escapeLike(*filter.Search)+"%")
		argIndex++
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, req entity.CreateProductRequest) (*entity.Product, error) {
	var imageURLs pq.StringArray
	if len(req.ImageURLs) > 0 {
		imageURLs = req.ImageURLs
	}

	var product entity.Product
	query := `
		INSERT INTO products (name, category, price, car_brand, car_model, stock_status, supplier_id,
			image_url, image_urls, description, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns

	err := r.db.GetContext(ctx, &product, query,
		req.Name,
		req.Category,
		req.Price,
		req.CarBrand,
		req.CarModel,
		req.StockStatus,
		req.SupplierID,
		req.ImageURL,
		imageURLs,
		req.Description,
		req.Featured,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", constraintError(err))
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateProductRequest) (*entity.Product, error) {
	var b updateBuilder
	if req.Name != nil {
		b.set("name", *req.Name)
	}
	if req.Category != nil {
		b.set("category", *req.Category)
	}
	if req.Price != nil {
		b.set("price", *req.Price)
	}
	if req.CarBrand != nil {
		b.set("car_brand", *req.CarBrand)
	}
	if req.CarModel != nil {
		b.set("car_model", *req.CarModel)
	}
	if req.StockStatus != nil {
		b.set("stock_status", *req.StockStatus)
	}
	if req.SupplierID != nil {
		b.set("supplier_id", *req.SupplierID)
	}
	if req.ImageURL != nil {
		b.set("image_url", *req.ImageURL)
	}
	if req.ImageURLs != nil {
		b.set("image_urls", pq.StringArray(*req.ImageURLs))
	}
	if req.Description != nil {
		b.set("description", *req.Description)
	}
	if req.Featured != nil {
		b.set("featured", *req.Featured)
	}
	b.sets = append(b.sets, "updated_at = NOW()")

	query, args := b.query("products", productColumns, id)

	var product entity.Product
	if err := r.db.GetContext(ctx, &product, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", constraintError(err))
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
