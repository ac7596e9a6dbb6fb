package models

import (
	"time"
)

type Member struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	TeamID       uint64    `gorm:"not null;index" json:"team_id"`
	ProfileImage string    `gorm:"type:text" json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}
