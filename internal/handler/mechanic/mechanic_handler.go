package mechanic

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	service "github.com/rblc/parts-marketplace-backend/internal/service/mechanic"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

type MechanicHandler struct {
	service service.MechanicService
}

func NewMechanicHandler(service service.MechanicService) *MechanicHandler {
	return &MechanicHandler{service: service}
}

// ListMechanics godoc
// @Summary      List mechanics
// @Description  Partner garages, newest first
// @Tags         /api/v1/mechanics
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Mechanic}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
	mechanics, err := h.service.ListMechanics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch mechanics", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: mechanics, Success: true})
}

// RegisterMechanic godoc
// @Summary      Register as a partner mechanic
// @Description  Stores the garage with a generated referral code and returns a wa.me link announcing it
// @Tags         /api/v1/mechanics
// @Accept       json
// @Produce      json
// @Param        mechanic  body      entity.MechanicRequest  true  "Registration"
// @Success      201       {object}  wrapper.ResponseWrapper{data=entity.RegisterMechanicResponse}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      409       {object}  wrapper.ErrorWrapper
// @Failure      429       {object}  wrapper.ErrorWrapper
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /mechanics/register [post]
func (h *MechanicHandler) RegisterMechanic(c *gin.Context) {
	var req entity.MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	resp, err := h.service.RegisterMechanic(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register mechanic")
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: resp, Success: true})
}

// CreateMechanic godoc
// @Summary      Create mechanic
// @Description  referral_code is generated when omitted
// @Tags         /api/v1/admin/mechanics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        mechanic  body      entity.MechanicRequest  true  "Mechanic"
// @Success      201       {object}  wrapper.ResponseWrapper{data=entity.Mechanic}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      409       {object}  wrapper.ErrorWrapper
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /admin/mechanics [post]
func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	var req entity.MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	mechanic, err := h.service.CreateMechanic(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create mechanic")
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: mechanic, Success: true})
}

// UpdateMechanic godoc
// @Summary      Update mechanic
// @Tags         /api/v1/admin/mechanics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                        true  "Mechanic ID"
// @Param        mechanic  body      entity.UpdateMechanicRequest  true  "Fields to change"
// @Success      200       {object}  wrapper.ResponseWrapper{data=entity.Mechanic}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      404       {object}  wrapper.ErrorWrapper
// @Failure      409       {object}  wrapper.ErrorWrapper
// @Failure      500       {object}  wrapper.ErrorWrapper
// @Router       /admin/mechanics/{id} [put]
func (h *MechanicHandler) UpdateMechanic(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	var req entity.UpdateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	mechanic, err := h.service.UpdateMechanic(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update mechanic")
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: mechanic, Success: true})
}

// DeleteMechanic godoc
// @Summary      Delete mechanic
// @Tags         /api/v1/admin/mechanics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mechanic ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /admin/mechanics/{id} [delete]
func (h *MechanicHandler) DeleteMechanic(c *gin.Context) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	if err := h.service.DeleteMechanic(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete mechanic")
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Mechanic deleted", Success: true})
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Mechanic not found", Success: false})
	case errors.Is(err, service.ErrInvalidMechanic), errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, service.ErrReferralCodeUnavailable):
		c.JSON(http.StatusConflict, wrapper.ErrorWrapper{Message: "Referral code already in use", Success: false})
	default:
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: fallback, Success: false})
	}
}
