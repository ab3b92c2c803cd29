package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	orders     map[uuid.UUID]entity.Order
	lastFilter entity.OrderFilter
	updates    int
}

func newFakeRepo() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[uuid.UUID]entity.Order{}}
}

func (f *fakeOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	order.ID = uuid.Must(uuid.NewV4())
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (f *fakeOrderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]entity.Order, error) {
	f.lastFilter = filter
	orders := []entity.Order{}
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateOrderRequest) (*entity.Order, error) {
	f.updates++
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.SupplierUsed != nil {
		order.SupplierUsed = req.SupplierUsed
	}
	if req.ProfitMargin != nil {
		order.ProfitMargin = *req.ProfitMargin
	}
	if req.TotalAmount != nil {
		order.TotalAmount = decimal.NewNullDecimal(*req.TotalAmount)
	}
	f.orders[id] = order
	return &order, nil
}

func ptr[T any](v T) *T {
	return &v
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOrderService(repo, "+250 786 905 080", nil)

	resp, err := svc.CreateOrder(context.Background(), entity.CreateOrderRequest{
		CustomerName:  "Aline",
		CustomerPhone: "0788000111",
		RequestedPart: "Brake pads",
		CarBrand:      "Toyota",
		CarModel:      "RAV4",
		Year:          "2012",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Order.Status)
	assert.True(t, resp.Order.ProfitMargin.Equal(decimal.Zero))
	assert.Nil(t, resp.Order.MechanicReferred)
	assert.Equal(t, "Toyota", *resp.Order.CarBrand)
	assert.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/250786905080?text="))
	assert.Contains(t, resp.WhatsAppLink, "Brake%20pads")
	assert.Contains(t, resp.WhatsAppLink, "RAV4%20%282012%29")
	assert.Len(t, repo.orders, 1)
}

func TestOrderService_CreateOrder_NegativeMargin(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewOrderService(repo, "250786905080", nil).CreateOrder(context.Background(), entity.CreateOrderRequest{
		CustomerName:  "A",
		CustomerPhone: "1",
		RequestedPart: "Filter",
		ProfitMargin:  ptr(decimal.NewFromInt(-5)),
	})

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, repo.orders)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOrderService(repo, "250786905080", nil)

	created, err := svc.CreateOrder(context.Background(), entity.CreateOrderRequest{
		CustomerName: "A", CustomerPhone: "1", RequestedPart: "Filter",
	})
	require.NoError(t, err)
	id := created.Order.ID

	t.Run("rejects empty update", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), id, entity.UpdateOrderRequest{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), id, entity.UpdateOrderRequest{Status: ptr("shipped")})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), id, entity.UpdateOrderRequest{
			TotalAmount: ptr(decimal.RequireFromString("-1.50")),
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	assert.Zero(t, repo.updates)

	t.Run("allows any transition", func(t *testing.T) {
		order, err := svc.UpdateOrder(context.Background(), id, entity.UpdateOrderRequest{
			Status:      ptr(entity.OrderStatusCompleted),
			TotalAmount: ptr(decimal.RequireFromString("45000.00")),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, order.Status)
		assert.True(t, order.TotalAmount.Valid)

		order, err = svc.UpdateOrder(context.Background(), id, entity.UpdateOrderRequest{
			Status: ptr(entity.OrderStatusPending),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), uuid.Must(uuid.NewV4()),
			entity.UpdateOrderRequest{SupplierUsed: ptr("Kigali Auto")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOrderService(repo, "250786905080", nil)

	_, err := svc.ListOrders(context.Background(), entity.OrderFilter{Status: ptr(""), Phone: ptr("0788")})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.Status)
	assert.Equal(t, "0788", *repo.lastFilter.Phone)

	_, err = svc.ListOrders(context.Background(), entity.OrderFilter{Status: ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_CreateOrder_BlankRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  entity.CreateOrderRequest
		want string
	}{
		{"blank part", entity.CreateOrderRequest{CustomerName: "A", CustomerPhone: "0788", RequestedPart: "   "}, "requested_part"},
		{"blank phone", entity.CreateOrderRequest{CustomerName: "A", CustomerPhone: "\t", RequestedPart: "Filter"}, "customer_phone"},
		{"blank name", entity.CreateOrderRequest{CustomerName: " ", CustomerPhone: "0788", RequestedPart: "Filter"}, "customer_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()

			_, err := NewOrderService(repo, "250786905080", nil).CreateOrder(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, repo.orders)
		})
	}
}

type fakeSuggester struct {
	calls []string
}

func (f *fakeSuggester) SuggestRelatedParts(ctx context.Context, carBrand, carModel, requestedPart string) []string {
	f.calls = append(f.calls, carBrand+"|"+carModel+"|"+requestedPart)
	return []string{"Brake discs", "Brake fluid"}
}

func TestOrderService_CreateOrder_SuggestedParts(t *testing.T) {
	req := entity.CreateOrderRequest{
		CustomerName:  "Aline",
		CustomerPhone: "0788000111",
		RequestedPart: " Brake pads ",
		CarBrand:      "Toyota",
		CarModel:      "RAV4",
	}

	t.Run("with suggester", func(t *testing.T) {
		suggester := &fakeSuggester{}

		resp, err := NewOrderService(newFakeRepo(), "250786905080", suggester).CreateOrder(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []string{"Brake discs", "Brake fluid"}, resp.SuggestedParts)
		assert.Equal(t, []string{"Toyota|RAV4|Brake pads"}, suggester.calls)
	})

	t.Run("without suggester", func(t *testing.T) {
		resp, err := NewOrderService(newFakeRepo(), "250786905080", nil).CreateOrder(context.Background(), req)

		require.NoError(t, err)
		assert.NotNil(t, resp.SuggestedParts)
		assert.Empty(t, resp.SuggestedParts)
	})
}
