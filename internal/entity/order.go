package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

var validOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

func IsValidOrderStatus(status string) bool {
	return validOrderStatuses[status]
}

// Order is a customer part request.
type Order struct {
	ID               uuid.UUID           `json:"id" db:"id"`
	CustomerPhone    string              `json:"customer_phone" db:"customer_phone"`
	CustomerName     *string             `json:"customer_name,omitempty" db:"customer_name"`
	RequestedPart    string              `json:"requested_part" db:"requested_part"`
	CarBrand         *string             `json:"car_brand,omitempty" db:"car_brand"`
	CarModel         *string             `json:"car_model,omitempty" db:"car_model"`
	Status           string              `json:"status" db:"status"`
	ProfitMargin     decimal.Decimal     `json:"profit_margin" db:"profit_margin"`
	SupplierUsed     *string             `json:"supplier_used,omitempty" db:"supplier_used"`
	MechanicReferred *string             `json:"mechanic_referred,omitempty" db:"mechanic_referred"`
	TotalAmount      decimal.NullDecimal `json:"total_amount" db:"total_amount"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerName     string           `json:"customer_name" binding:"required"`
	CustomerPhone    string           `json:"customer_phone" binding:"required"`
	RequestedPart    string           `json:"requested_part" binding:"required"`
	CarBrand         string           `json:"car_brand"`
	CarModel         string           `json:"car_model"`
	Year             string           `json:"year"`
	AdditionalInfo   string           `json:"additional_info"`
	MechanicReferred string           `json:"mechanic_referred"`
	ProfitMargin     *decimal.Decimal `json:"profit_margin"`
}

type UpdateOrderRequest struct {
	Status       *string          `json:"status"`
	SupplierUsed *string          `json:"supplier_used"`
	ProfitMargin *decimal.Decimal `json:"profit_margin"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
}

func (r UpdateOrderRequest) IsEmpty() bool {
	return r.Status == nil && r.SupplierUsed == nil && r.ProfitMargin == nil && r.TotalAmount == nil
}

type OrderFilter struct {
	Status *string `form:"status"`
	Phone  *string `form:"phone"`
}

type CreateOrderResponse struct {
	Order          *Order   `json:"order"`
	WhatsAppLink   string   `json:"whatsappLink"`
	SuggestedParts []string `json:"suggestedParts"`
}
