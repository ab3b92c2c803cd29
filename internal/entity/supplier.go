package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	SupplierName   string          `json:"supplier_name" db:"supplier_name"`
	Phone          string          `json:"phone" db:"phone"`
	Location       string          `json:"location" db:"location"`
	Specialization string          `json:"specialization" db:"specialization"`
	TrustScore     decimal.Decimal `json:"trust_score" db:"trust_score"`
	Email          *string         `json:"email,omitempty" db:"email"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

type CreateSupplierRequest struct {
	SupplierName   string           `json:"supplier_name" binding:"required"`
	Phone          string           `json:"phone" binding:"required"`
	Location       string           `json:"location"`
	Specialization string           `json:"specialization"`
	TrustScore     *decimal.Decimal `json:"trust_score"`
	Email          *string          `json:"email"`
}

type UpdateSupplierRequest struct {
	SupplierName   *string          `json:"supplier_name"`
	Phone          *string          `json:"phone"`
	Location       *string          `json:"location"`
	Specialization *string          `json:"specialization"`
	TrustScore     *decimal.Decimal `json:"trust_score"`
	Email          *string          `json:"email"`
}

func (r UpdateSupplierRequest) IsEmpty() bool {
	return r.SupplierName == nil && r.Phone == nil && r.Location == nil &&
		r.Specialization == nil && r.TrustScore == nil && r.Email == nil
}
