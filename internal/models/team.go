package models

import (
	"time"
)

type Team struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Members      []Member     `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
