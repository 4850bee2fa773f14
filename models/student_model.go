package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     string    `gorm:"size:30;not null" json:"phone"`
	AddedAt   time.Time `gorm:"not null" json:"added_at"`

	// Smallest currency unit (tiyin).
	CoursePrice int64 `gorm:"not null" json:"course_price"`

	IsDeleted bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	IsRefund  bool       `gorm:"not null;default:false" json:"is_refund"`

	DeleteReasonID *int          `json:"delete_reason_id"`
	DeleteReason   *DeleteReason `gorm:"foreignkey:DeleteReasonID" json:"delete_reason,omitempty"`

	ManagerID *uuid.UUID `gorm:"type:uuid" json:"manager_id"`
	Manager   *User      `gorm:"foreignkey:ManagerID" json:"manager,omitempty"`
	CuratorID *uuid.UUID `gorm:"type:uuid" json:"curator_id"`
	Curator   *User      `gorm:"foreignkey:CuratorID" json:"curator,omitempty"`
	GroupID   *uuid.UUID `gorm:"type:uuid" json:"group_id"`
	Group     *Group     `gorm:"foreignkey:GroupID" json:"group,omitempty"`
	CourseID  *uuid.UUID `gorm:"type:uuid" json:"course_id"`
	Course    *Course    `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	Payments []Payment `gorm:"foreignkey:StudentID" json:"payments,omitempty"`
	Refund   *Refund   `gorm:"foreignkey:StudentID" json:"refund,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
