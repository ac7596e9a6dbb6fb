package repository

import (
	"github.com/sakimura/org-directory-api/internal/models"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// List retrieves all members
func (r *GormMemberRepository) List() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
