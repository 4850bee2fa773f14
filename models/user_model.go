package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleCurator = "CURATOR"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'MANAGER'" json:"role"`
	Avatar    *string   `gorm:"size:255" json:"avatar"`

	// bcrypt hash of the currently valid refresh token; nil when logged out.
	RefreshToken *string `gorm:"size:255" json:"-"`

	ManagedStudents []Student `gorm:"foreignkey:ManagerID" json:"managed_students,omitempty"`
	CuratedStudents []Student `gorm:"foreignkey:CuratorID" json:"curated_students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
