package models

// DeleteReason is a lookup row referenced by soft-deleted students.
type DeleteReason struct {
	ID     int    `gorm:"primary_key;auto_increment" json:"id"`
	NameUz string `gorm:"size:255;not null" json:"name_uz"`
	NameRu string `gorm:"size:255;not null" json:"name_ru"`
}
