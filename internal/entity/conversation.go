package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ChatMessages is stored as a JSONB column.
type ChatMessages []ChatMessage

// Value encodes as a string: lib/pq would send a []byte as bytea.
func (m ChatMessages) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *ChatMessages) Scan(value interface{}) error {
	if value == nil {
		*m = ChatMessages{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ChatMessages", value)
	}

	return json.Unmarshal(data, m)
}

type Conversation struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	CustomerPhone string       `json:"customer_phone" db:"customer_phone"`
	Messages      ChatMessages `json:"messages" db:"messages"`
	Escalated     bool         `json:"escalated" db:"escalated"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
	CustomerPhone       string        `json:"customerPhone"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Escalated bool   `json:"escalated"`
}
