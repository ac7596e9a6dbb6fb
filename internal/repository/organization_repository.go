package repository

import (
	"github.com/sakimura/org-directory-api/internal/database"
	"github.com/sakimura/org-directory-api/internal/models"
	"gorm.io/gorm"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *GormOrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// ListWithHierarchy retrieves all organizations ordered by name with teams
// and members preloaded two levels deep
func (r *GormOrganizationRepository) ListWithHierarchy() ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.
		Scopes(database.OrderByName).
		Preload("Teams").
		Preload("Teams.Members").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
