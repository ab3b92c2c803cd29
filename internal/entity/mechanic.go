package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// Mechanic is a partner garage. Customers quote its referral code when
// requesting parts.
type Mechanic struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	GarageName   string    `json:"garage_name" db:"garage_name"`
	Location     string    `json:"location" db:"location"`
	Phone        string    `json:"phone" db:"phone"`
	Email        *string   `json:"email,omitempty" db:"email"`
	ReferralCode string    `json:"referral_code" db:"referral_code"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type MechanicRequest struct {
	Name         string  `json:"name" binding:"required"`
	GarageName   string  `json:"garage_name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Email        *string `json:"email"`
	ReferralCode string  `json:"referral_code"`
}

type UpdateMechanicRequest struct {
	Name         *string `json:"name"`
	GarageName   *string `json:"garage_name"`
	Location     *string `json:"location"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	ReferralCode *string `json:"referral_code"`
}

func (r UpdateMechanicRequest) IsEmpty() bool {
	return r.Name == nil && r.GarageName == nil && r.Location == nil &&
		r.Phone == nil && r.Email == nil && r.ReferralCode == nil
}

type RegisterMechanicResponse struct {
	Mechanic     *Mechanic `json:"mechanic"`
	WhatsAppLink string    `json:"whatsappLink"`
}
