package dto

import (
	"time"

	"github.com/sakimura/org-directory-api/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uint64    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// MemberDTO represents a member in API responses
type MemberDTO struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	TeamID       uint64    `json:"team_id"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Conversion functions

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Email:     org.Email,
		Location:  org.Location,
		CreatedAt: org.CreatedAt,
	}
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:             team.ID,
		Name:           team.Name,
		OrganizationID: team.OrganizationID,
		CreatedAt:      team.CreatedAt,
	}
}

// ToMemberDTO converts a Member model to MemberDTO
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:           member.ID,
		Name:         member.Name,
		Email:        member.Email,
		TeamID:       member.TeamID,
		ProfileImage: member.ProfileImage,
		CreatedAt:    member.CreatedAt,
	}
}
