package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type FAQ struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Category  *string   `json:"category,omitempty" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type FAQRequest struct {
	Question string  `json:"question" binding:"required"`
	Answer   string  `json:"answer" binding:"required"`
	Category *string `json:"category"`
}
