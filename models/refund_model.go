package models

import (
	"time"

	"github.com/google/uuid"
)

type Refund struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Amount  int64     `gorm:"not null" json:"amount"`
	Comment *string   `gorm:"type:text" json:"comment"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;unique" json:"student_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
