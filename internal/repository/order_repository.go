package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

const orderColumns = `id, customer_phone, customer_name, requested_part, car_brand, car_model, status,
	profit_margin, supplier_used, mechanic_referred, total_amount, created_at, updated_at`

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error)
	Update(ctx context.Context, id uuid.UUID, req entity.UpdateOrderRequest) (*entity.Order, error)
}

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (customer_phone, customer_name, requested_part, car_brand, car_model, status, profit_margin, mechanic_referred)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	err := r.db.GetContext(ctx, order, query,
		order.CustomerPhone,
		order.CustomerName,
		order.RequestedPart,
		order.CarBrand,
		order.CarModel,
		order.Status,
		order.ProfitMargin,
		order.MechanicReferred,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	orders := []entity.Order{}

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.Phone != nil {
		conditions = append(conditions, fmt.Sprintf("customer_phone = $%d", argIndex))
		args = append(args, *filter.Phone)
		argIndex++
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateOrderRequest) (*entity.Order, error) {
	sets := []string{"updated_at = NOW()"}
	var args []interface{}
	argIndex := 1

	if req.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *req.Status)
		argIndex++
	}

	if req.SupplierUsed != nil {
		sets = append(sets, fmt.Sprintf("supplier_used = $%d", argIndex))
		args = append(args, *req.SupplierUsed)
		argIndex++
	}

	if req.ProfitMargin != nil {
		sets = append(sets, fmt.Sprintf("profit_margin = $%d", argIndex))
		args = append(args, *req.ProfitMargin)
		argIndex++
	}

	if req.TotalAmount != nil {
		sets = append(sets, fmt.Sprintf("total_amount = $%d", argIndex))
		args = append(args, *req.TotalAmount)
		argIndex++
	}

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIndex, orderColumns)
	args = append(args, id)

	var order entity.Order
	if err := r.db.GetContext(ctx, &order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}
