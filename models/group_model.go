package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LearningFormatOnline  = "ONLINE"
	LearningFormatOffline = "OFFLINE"
)

type Group struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"size:100;not null;unique" json:"name"`
	LearningFormat string    `gorm:"size:20;not null" json:"learning_format"`
	GroupColor     string    `gorm:"size:20;not null" json:"group_color"`

	Students []Student `gorm:"foreignkey:GroupID" json:"students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
