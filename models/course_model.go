package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:100;not null;unique" json:"name"`
	Icon string    `gorm:"size:255;not null" json:"icon"`

	Students []Student `gorm:"foreignkey:CourseID" json:"students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
