package faq

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	service "github.com/rblc/parts-marketplace-backend/internal/service/faq"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

type FAQHandler struct {
	service service.FAQService
}

func NewFAQHandler(service service.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

// ListFAQs godoc
// @Summary      List FAQs
// @Description  All FAQs ordered by category
// @Tags         /api/v1/faqs
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.FAQ}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /faqs [get]
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch FAQs", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: faqs, Success: true})
}

// CreateFAQ godoc
// @Summary      Create FAQ
// @Tags         /api/v1/admin/faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        faq  body      entity.FAQRequest  true  "FAQ"
// @Success      201  {object}  wrapper.ResponseWrapper{data=entity.FAQ}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/faqs [post]
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req entity.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	faq, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to create FAQ", Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: faq, Success: true})
}

// UpdateFAQ godoc
// @Summary      Update FAQ
// @Tags         /api/v1/admin/faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string             true  "FAQ ID"
// @Param        faq  body      entity.FAQRequest  true  "FAQ"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.FAQ}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	faq, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "FAQ not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to update FAQ", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: faq, Success: true})
}

// DeleteFAQ godoc
// @Summary      Delete FAQ
// @Tags         /api/v1/admin/faqs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "FAQ ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/faqs/{id} [delete]
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "FAQ not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to delete FAQ", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "FAQ deleted", Success: true})
}
