package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	service "github.com/rblc/parts-marketplace-backend/internal/service/order"
	"github.com/rblc/parts-marketplace-backend/pkg/metrics"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

type OrderHandler struct {
	service service.OrderService
	metrics *metrics.Metrics
}

func NewOrderHandler(service service.OrderService, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{service: service, metrics: m}
}

// CreateOrder godoc
// @Summary      Request a part
// @Description  Creates a pending order and returns a wa.me link with the request pre-filled
// @Tags         /api/v1/orders
// @Accept       json
// @Produce      json
// @Param        order  body      entity.CreateOrderRequest  true  "Part request"
// @Success      201    {object}  wrapper.ResponseWrapper{data=entity.CreateOrderResponse}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      429    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req entity.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) || errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to create order", Success: false})
		return
	}

	h.metrics.OrderCreated()
	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: resp, Success: true})
}

// GetOrders godoc
// @Summary      List orders
// @Description  Newest first, optionally filtered by status and customer phone
// @Tags         /api/v1/admin/orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, processing, completed or cancelled"
// @Param        phone   query     string  false  "Customer phone"
// @Success      200     {object}  wrapper.ResponseWrapper{data=[]entity.Order}
// @Failure      400     {object}  wrapper.ErrorWrapper
// @Failure      500     {object}  wrapper.ErrorWrapper
// @Router       /admin/orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filter entity.OrderFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if phone := c.Query("phone"); phone != "" {
		filter.Phone = &phone
	}

	orders, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch orders", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: orders, Success: true})
}

// GetOrderByID godoc
// @Summary      Get order
// @Tags         /api/v1/admin/orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.Order}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/orders/{id} [get]
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Order not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch order", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: order, Success: true})
}

// UpdateOrder godoc
// @Summary      Update order
// @Description  Sets status, supplier, margin or total. Only provided fields change.
// @Tags         /api/v1/admin/orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                     true  "Order ID"
// @Param        order  body      entity.UpdateOrderRequest  true  "Fields to update"
// @Success      200    {object}  wrapper.ResponseWrapper{data=entity.Order}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      404    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /admin/orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate),
			errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Order not found", Success: false})
		default:
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to update order", Success: false})
		}
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: order, Success: true})
}
