package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	service "github.com/rblc/parts-marketplace-backend/internal/service/product"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts godoc
// @Summary      List products
// @Description  Newest first. search matches name or description, case-insensitively
// @Tags         /api/v1/products
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        brand     query     string  false  "Car brand"
// @Param        model     query     string  false  "Car model"
// @Param        search    query     string  false  "Free text"
// @Success      200       {object}  wrapper.ResponseWrapper{data=[]entity.Product}
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := entity.ProductFilter{
		Category: query(c, "category"),
		Brand:    query(c, "brand"),
		Model:    query(c, "model"),
		Search:   query(c, "search"),
	}

	products, err := h.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch products", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: products, Success: true})
}

// GetProduct godoc
// @Summary      Get product
// @Tags         /api/v1/products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.Product}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: product, Success: true})
}

// CreateProduct godoc
// @Summary      Create product
// @Tags         /api/v1/admin/products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product  body      entity.CreateProductRequest  true  "Product"
// @Success      201      {object}  wrapper.ResponseWrapper{data=entity.Product}
// @Failure      400      {object}  wrapper.ErrorWrapper
// @Failure      500      {object}  wrapper.ErrorWrapper
// @Router       /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req entity.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: product, Success: true})
}

// UpdateProduct godoc
// @Summary      Update product
// @Description  Only the fields present in the body are changed
// @Tags         /api/v1/admin/products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Product ID"
// @Param        product  body      entity.UpdateProductRequest  true  "Fields to change"
// @Success      200      {object}  wrapper.ResponseWrapper{data=entity.Product}
// @Failure      400      {object}  wrapper.ErrorWrapper
// @Failure      404      {object}  wrapper.ErrorWrapper
// @Failure      500      {object}  wrapper.ErrorWrapper
// @Router       /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: product, Success: true})
}

// DeleteProduct godoc
// @Summary      Delete product
// @Tags         /api/v1/admin/products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Product deleted", Success: true})
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Product not found", Success: false})
	case errors.Is(err, service.ErrInvalidProduct), errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.Is(err, repository.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Unknown supplier_id", Success: false})
	default:
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: fallback, Success: false})
	}
}

func query(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}
