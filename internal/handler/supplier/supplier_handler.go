package supplier

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	service "github.com/rblc/parts-marketplace-backend/internal/service/supplier"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(service service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// ListSuppliers godoc
// @Summary      List suppliers
// @Description  Highest trust score first
// @Tags         /api/v1/suppliers
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Supplier}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch suppliers", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: suppliers, Success: true})
}

// CreateSupplier godoc
// @Summary      Create supplier
// @Tags         /api/v1/admin/suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        supplier  body      entity.CreateSupplierRequest  true  "Supplier"
// @Success      201       {object}  wrapper.ResponseWrapper{data=entity.Supplier}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /admin/suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req entity.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	supplier, err := h.service.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: supplier, Success: true})
}

// UpdateSupplier godoc
// @Summary      Update supplier
// @Tags         /api/v1/admin/suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                        true  "Supplier ID"
// @Param        supplier  body      entity.UpdateSupplierRequest  true  "Fields to change"
// @Success      200       {object}  wrapper.ResponseWrapper{data=entity.Supplier}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      404       {object}  wrapper.ErrorWrapper
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /admin/suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	supplier, err := h.service.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: supplier, Success: true})
}

// DeleteSupplier godoc
// @Summary      Delete supplier
// @Description  Products of the supplier are kept without a supplier
// @Tags         /api/v1/admin/suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	if err := h.service.DeleteSupplier(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Supplier deleted", Success: true})
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Supplier not found", Success: false})
	case errors.Is(err, service.ErrInvalidSupplier), errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	default:
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: fallback, Success: false})
	}
}
