package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	StockStatusInStock    = "in_stock"
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLowStock   = "low_stock"
)

func IsValidStockStatus(status string) bool {
	switch status {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusLowStock:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CarBrand    string          `json:"car_brand" db:"car_brand"`
	CarModel    string          `json:"car_model" db:"car_model"`
	StockStatus string          `json:"stock_status" db:"stock_status"`
	SupplierID  uuid.NullUUID   `json:"supplier_id" db:"supplier_id"`
	ImageURL    *string         `json:"image_url" db:"image_url"`
	ImageURLs   pq.StringArray  `json:"image_urls" db:"image_urls"`
	Description *string         `json:"description,omitempty" db:"description"`
	Featured    bool            `json:"featured" db:"featured"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CarBrand    string           `json:"car_brand" binding:"required"`
	CarModel    string           `json:"car_model" binding:"required"`
	StockStatus string           `json:"stock_status"`
	SupplierID  *uuid.UUID       `json:"supplier_id"`
	ImageURL    *string          `json:"image_url"`
	ImageURLs   []string         `json:"image_urls"`
	Description *string          `json:"description"`
	Featured    bool             `json:"featured"`
}

// UpdateProductRequest carries only the fields being changed.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	CarBrand    *string          `json:"car_brand"`
	CarModel    *string          `json:"car_model"`
	StockStatus *string          `json:"stock_status"`
	SupplierID  *uuid.UUID       `json:"supplier_id"`
	ImageURL    *string          `json:"image_url"`
	ImageURLs   *[]string        `json:"image_urls"`
	Description *string          `json:"description"`
	Featured    *bool            `json:"featured"`
}

func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Price == nil && r.CarBrand == nil &&
		r.CarModel == nil && r.StockStatus == nil && r.SupplierID == nil && r.ImageURL == nil &&
		r.ImageURLs == nil && r.Description == nil && r.Featured == nil
}

type ProductFilter struct {
	Category *string
	Brand    *string
	Model    *string
	Search   *string
}
