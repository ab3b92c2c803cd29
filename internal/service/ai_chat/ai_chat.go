package ai_chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

const (
	escalatePrefix = "ESCALATE"

	maxSuggestedParts = 5
	suggestTimeout    = 10 * time.Second

	FallbackReply = "Sorry, I encountered an error. Please try again or contact support."
	emptyReply    = "Sorry, I could not process your request."
)

var (
	ErrMessageRequired       = errors.New("message is required")
	ErrWebhookFieldsRequired = errors.New("From and Body are required")
	errMissingAPIKey         = errors.New("OPENAI_API_KEY is not configured")
)

type FAQSource interface {
	List(ctx context.Context) ([]entity.FAQ, error)
}

type ConversationStore interface {
	FindLatestByPhone(ctx context.Context, phone string) (*entity.Conversation, error)
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, id uuid.UUID, messages entity.ChatMessages, escalated bool) error
	List(ctx context.Context, escalated *bool) ([]entity.Conversation, error)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type AIChatService struct {
	apiKey        string
	model         string
	baseURL       string
	httpClient    *http.Client
	faqs          FAQSource
	conversations ConversationStore
	logger        *slog.Logger
	now           func() time.Time
}

type OpenAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

func NewAIChatService(cfg Config, faqs FAQSource, conversations ConversationStore, logger *slog.Logger) *AIChatService {
	return &AIChatService{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		faqs:          faqs,
		conversations: conversations,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Chat answers one customer message. A failed model call degrades to
// FallbackReply; only an empty message is an error.
func (s *AIChatService) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	history := filterHistory(req.ConversationHistory)

	reply, escalated := s.reply(ctx, message, history, s.loadFAQs(ctx))

	if phone := strings.TrimSpace(req.CustomerPhone); phone != "" {
		if err := s.saveConversation(ctx, phone, history, message, reply, escalated); err != nil {
			s.logger.Error("failed to save conversation",
				slog.String("customer_phone", phone), slog.Any("error", err))
		}
	}

	return &entity.ChatResponse{Response: reply, Escalated: escalated}, nil
}

// HandleWhatsAppMessage answers a message relayed by the WhatsApp webhook.
// The history comes from the sender's stored conversation, which is then
// extended with the exchange. No reply is sent back over WhatsApp.
func (s *AIChatService) HandleWhatsAppMessage(ctx context.Context, from, body string) (*entity.ChatResponse, error) {
	phone := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(from), "whatsapp:"))
	message := strings.TrimSpace(body)
	if phone == "" || message == "" {
		return nil, ErrWebhookFieldsRequired
	}

	existing, err := s.conversations.FindLatestByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation for %s: %w", phone, err)
	}

	var history []entity.ChatMessage
	if existing != nil {
		history = filterHistory(existing.Messages)
	}

	reply, escalated := s.reply(ctx, message, history, s.loadFAQs(ctx))

	if err := s.storeConversation(ctx, existing, phone, s.appendExchange(history, message, reply), escalated); err != nil {
		s.logger.Error("failed to save WhatsApp conversation",
			slog.String("customer_phone", phone), slog.Any("error", err))
	}

	if escalated {
		s.logger.Warn("escalated WhatsApp conversation", slog.String("customer_phone", phone))
	}

	return &entity.ChatResponse{Response: reply, Escalated: escalated}, nil
}

func (s *AIChatService) ListConversations(ctx context.Context, escalated *bool) ([]entity.Conversation, error) {
	conversations, err := s.conversations.List(ctx, escalated)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (s *AIChatService) reply(ctx context.Context, message string, history []entity.ChatMessage, faqs []entity.FAQ) (string, bool) {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: entity.RoleSystem, Content: buildSystemPrompt(faqs)})
	for _, m := range history {
		messages = append(messages, Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, Message{Role: entity.RoleUser, Content: message})

	response, err := s.callOpenAI(ctx, OpenAIRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		s.logger.Error("OpenAI API error", slog.Any("error", err))
		return FallbackReply, false
	}

	if response == "" {
		response = emptyReply
	}

	return ParseEscalation(response)
}

// ParseEscalation reports whether the model asked for a human and strips the
// marker from the reply shown to the customer.
func ParseEscalation(response string) (string, bool) {
	if !strings.HasPrefix(response, escalatePrefix) {
		return response, false
	}
	return strings.TrimLeft(strings.TrimPrefix(response, escalatePrefix), " \t\r\n"), true
}

func (s *AIChatService) loadFAQs(ctx context.Context) []entity.FAQ {
	faqs, err := s.faqs.List(ctx)
	if err != nil {
		s.logger.Warn("failed to load faqs for chat context", slog.Any("error", err))
		return nil
	}
	return faqs
}

func (s *AIChatService) saveConversation(ctx context.Context, phone string, history []entity.ChatMessage, message, reply string, escalated bool) error {
	existing, err := s.conversations.FindLatestByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return s.storeConversation(ctx, existing, phone, s.appendExchange(history, message, reply), escalated)
}

func (s *AIChatService) appendExchange(history []entity.ChatMessage, message, reply string) entity.ChatMessages {
	now := s.now()

	messages := make(entity.ChatMessages, 0, len(history)+2)
	messages = append(messages, history...)
	return append(messages,
		entity.ChatMessage{Role: entity.RoleUser, Content: message, Timestamp: &now},
		entity.ChatMessage{Role: entity.RoleAssistant, Content: reply, Timestamp: &now},
	)
}

// storeConversation updates existing when there is one and inserts otherwise.
func (s *AIChatService) storeConversation(ctx context.Context, existing *entity.Conversation, phone string, messages entity.ChatMessages, escalated bool) error {
	if existing != nil {
		return s.conversations.Update(ctx, existing.ID, messages, escalated)
	}

	return s.conversations.Create(ctx, &entity.Conversation{
		CustomerPhone: phone,
		Messages:      messages,
		Escalated:     escalated,
	})
}

func (s *AIChatService) callOpenAI(ctx context.Context, request OpenAIRequest) (string, error) {
	if s.apiKey == "" {
		return "", errMissingAPIKey
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: %d - %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return "", nil
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// SuggestRelatedParts asks the model for parts customers often need together
// with requestedPart. It never fails: any problem yields an empty list.
func (s *AIChatService) SuggestRelatedParts(ctx context.Context, carBrand, carModel, requestedPart string) []string {
	suggestions := []string{}
	if s.apiKey == "" {
		return suggestions
	}

	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`Given a car: %s %s, and a requested part: %s,
suggest 3-5 related parts that customers often need together or as alternatives.
Return only a JSON array of part names, no other text.`,
		strings.TrimSpace(carBrand), strings.TrimSpace(carModel), strings.TrimSpace(requestedPart))

	response, err := s.callOpenAI(ctx, OpenAIRequest{
		Model:       s.model,
		Messages:    []Message{{Role: entity.RoleUser, Content: prompt}},
		Temperature: 0.5,
		MaxTokens:   200,
	})
	if err != nil {
		s.logger.Warn("failed to suggest related parts", slog.Any("error", err))
		return suggestions
	}

	var parts []string
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &parts); err != nil {
		s.logger.Warn("unexpected related parts reply", slog.String("reply", response), slog.Any("error", err))
		return suggestions
	}

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" && len(suggestions) < maxSuggestedParts {
			suggestions = append(suggestions, part)
		}
	}
	return suggestions
}

func stripCodeFence(reply string) string {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	return strings.TrimSpace(reply)
}

// filterHistory drops entries with an unknown role or no content so a
// client cannot inject system messages.
func filterHistory(history []entity.ChatMessage) []entity.ChatMessage {
	filtered := make([]entity.ChatMessage, 0, len(history))
	for _, m := range history {
		if (m.Role == entity.RoleUser || m.Role == entity.RoleAssistant) && strings.TrimSpace(m.Content) != "" {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func buildSystemPrompt(faqs []entity.FAQ) string {
	return fmt.Sprintf(`You are a helpful AI assistant for RBLC ltd, a car spare parts marketplace in Rwanda.
Your role is to:
1. Answer customer inquiries about car parts
2. Help customers find the right parts for their car make/model
3. Provide information about suppliers and mechanics
4. Escalate complex issues to human admin

Available FAQs:
%s

If a customer asks something complex that requires human intervention (like complaints, refunds, or technical issues beyond FAQs), respond with "ESCALATE" at the start of your response.

Be friendly, professional, and concise. Respond in English or Kinyarwanda based on the customer's language preference.`,
		formatFAQsForPrompt(faqs))
}

func formatFAQsForPrompt(faqs []entity.FAQ) string {
	var result strings.Builder
	for i, faq := range faqs {
		if i > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString("Q: " + faq.Question + "\nA: " + faq.Answer)
	}
	return result.String()
}
