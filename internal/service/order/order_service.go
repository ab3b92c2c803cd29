package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus = errors.New("invalid order status")
	ErrEmptyUpdate   = errors.New("no fields to update")
	ErrInvalidAmount = errors.New("amounts must not be negative")
	ErrMissingField  = errors.New("required field is blank")
)

type OrderService interface {
	CreateOrder(ctx context.Context, req entity.CreateOrderRequest) (*entity.CreateOrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req entity.UpdateOrderRequest) (*entity.Order, error)
}

// PartSuggester proposes parts often bought along with the requested one.
type PartSuggester interface {
	SuggestRelatedParts(ctx context.Context, carBrand, carModel, requestedPart string) []string
}

type orderService struct {
	repo           repository.OrderRepository
	businessNumber string
	suggester      PartSuggester
}

// NewOrderService builds the service. suggester may be nil.
func NewOrderService(repo repository.OrderRepository, businessNumber string, suggester PartSuggester) OrderService {
	return &orderService{
		repo:           repo,
		businessNumber: businessNumber,
		suggester:      suggester,
	}
}

// CreateOrder stores the request as a pending order and returns the wa.me link
// the customer uses to send the request to the business, together with
// related part suggestions when a suggester is configured.
func (s *orderService) CreateOrder(ctx context.Context, req entity.CreateOrderRequest) (*entity.CreateOrderResponse, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.RequestedPart = strings.TrimSpace(req.RequestedPart)

	switch {
	case req.CustomerName == "":
		return nil, fmt.Errorf("%w: customer_name", ErrMissingField)
	case req.CustomerPhone == "":
		return nil, fmt.Errorf("%w: customer_phone", ErrMissingField)
	case req.RequestedPart == "":
		return nil, fmt.Errorf("%w: requested_part", ErrMissingField)
	}

	margin := decimal.Zero
	if req.ProfitMargin != nil {
		if req.ProfitMargin.IsNegative() {
			return nil, ErrInvalidAmount
		}
		margin = *req.ProfitMargin
	}

	order := &entity.Order{
		CustomerPhone:    req.CustomerPhone,
		CustomerName:     &req.CustomerName,
		RequestedPart:    req.RequestedPart,
		CarBrand:         optional(req.CarBrand),
		CarModel:         optional(req.CarModel),
		Status:           entity.OrderStatusPending,
		ProfitMargin:     margin,
		MechanicReferred: optional(req.MechanicReferred),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	message := utils.FormatPartRequestMessage(utils.PartRequestMessage{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CarBrand:       req.CarBrand,
		CarModel:       req.CarModel,
		RequestedPart:  req.RequestedPart,
		Year:           req.Year,
		AdditionalInfo: req.AdditionalInfo,
	})

	suggestions := []string{}
	if s.suggester != nil {
		suggestions = s.suggester.SuggestRelatedParts(ctx, req.CarBrand, req.CarModel, req.RequestedPart)
	}

	return &entity.CreateOrderResponse{
		Order:          order,
		WhatsAppLink:   utils.WhatsAppLink(s.businessNumber, message),
		SuggestedParts: suggestions,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	if filter.Status != nil && *filter.Status == "" {
		filter.Status = nil
	}
	if filter.Phone != nil && *filter.Phone == "" {
		filter.Phone = nil
	}

	if filter.Status != nil && !entity.IsValidOrderStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}

	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder applies the provided fields. Any status may follow any other.
func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, req entity.UpdateOrderRequest) (*entity.Order, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if req.Status != nil && !entity.IsValidOrderStatus(*req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
	}

	if (req.ProfitMargin != nil && req.ProfitMargin.IsNegative()) ||
		(req.TotalAmount != nil && req.TotalAmount.IsNegative()) {
		return nil, ErrInvalidAmount
	}

	order, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return order, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
