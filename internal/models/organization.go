package models

import (
	"time"
)

type Organization struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Location  string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Teams []Team `gorm:"foreignKey:OrganizationID" json:"teams,omitempty"`
}
