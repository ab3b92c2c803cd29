package ai_chat

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/model/response/wrapper"
	service "github.com/rblc/parts-marketplace-backend/internal/service/ai_chat"
	"github.com/rblc/parts-marketplace-backend/pkg/metrics"
)

type ChatService interface {
	Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
	HandleWhatsAppMessage(ctx context.Context, from, body string) (*entity.ChatResponse, error)
	ListConversations(ctx context.Context, escalated *bool) ([]entity.Conversation, error)
}

type AIChatHandler struct {
	service ChatService
	metrics *metrics.Metrics
}

func NewAIChatHandler(service ChatService, m *metrics.Metrics) *AIChatHandler {
	return &AIChatHandler{service: service, metrics: m}
}

// Chat godoc
// @Summary      Ask the AI assistant
// @Description  Replies to a customer message. escalated is true when the assistant hands the conversation to an admin.
// @Description  The conversation is stored when customerPhone is given.
// @Tags         /api/v1/ai
// @Accept       json
// @Produce      json
// @Param        chat  body      entity.ChatRequest  true  "Message and prior history"
// @Success      200   {object}  entity.ChatResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  map[string]string
// @Router       /ai/chat [post]
func (h *AIChatHandler) Chat(c *gin.Context) {
	var req entity.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request"})
		return
	}

	h.metrics.ChatReplied(resp.Escalated)
	c.JSON(http.StatusOK, resp)
}

// WhatsAppWebhook godoc
// @Summary      Receive a WhatsApp message
// @Description  Twilio-style form callback. The sender's stored conversation is continued and the assistant's answer is saved with it.
// @Tags         /api/v1/whatsapp
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        From  formData  string  true  "Sender, e.g. whatsapp:+250788000111"
// @Param        Body  formData  string  true  "Message text"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  map[string]string
// @Router       /whatsapp/webhook [post]
func (h *AIChatHandler) WhatsAppWebhook(c *gin.Context) {
	resp, err := h.service.HandleWhatsAppMessage(c.Request.Context(), c.PostForm("From"), c.PostForm("Body"))
	if err != nil {
		if errors.Is(err, service.ErrWebhookFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	h.metrics.ChatReplied(resp.Escalated)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetConversations godoc
// @Summary      List assistant conversations
// @Tags         /api/v1/admin/conversations
// @Produce      json
// @Security     BearerAuth
// @Param        escalated  query     bool  false  "Only escalated (true) or only resolved (false)"
// @Success      200        {object}  wrapper.ResponseWrapper{data=[]entity.Conversation}
// @Failure      400        {object}  wrapper.ErrorWrapper
// @Failure      500        {object}  wrapper.ErrorWrapper
// @Router       /admin/conversations [get]
func (h *AIChatHandler) GetConversations(c *gin.Context) {
	var escalated *bool
	if raw := c.Query("escalated"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "escalated must be true or false", Success: false})
			return
		}
		escalated = &value
	}

	conversations, err := h.service.ListConversations(c.Request.Context(), escalated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: "Failed to fetch conversations", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: conversations, Success: true})
}
