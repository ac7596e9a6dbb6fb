package repository

import (
	"github.com/sakimura/org-directory-api/internal/models"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(org *models.Organization) error

	// ListWithHierarchy retrieves all organizations ordered by name with
	// their teams and each team's members eagerly loaded
	ListWithHierarchy() ([]models.Organization, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(team *models.Team) error

	// List retrieves all teams, flat, no ordering guarantee
	List() ([]models.Team, error)
}

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// Create creates a new member
	Create(member *models.Member) error

	// List retrieves all members, flat, no ordering guarantee
	List() ([]models.Member, error)
}
