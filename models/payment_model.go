package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Amount int64     `gorm:"not null" json:"amount"`

	PaymentAt time.Time `gorm:"column:payment_at;not null" json:"payment_at"`

	PaymentMethodID int            `gorm:"not null" json:"payment_method_id"`
	PaymentMethod   *PaymentMethod `gorm:"foreignkey:PaymentMethodID" json:"payment_method,omitempty"`

	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
