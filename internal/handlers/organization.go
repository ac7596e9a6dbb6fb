package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	"github.com/sakimura/org-directory-api/internal/services"
)

type OrganizationHandler struct {
	directoryService *services.DirectoryService
}

func NewOrganizationHandler(directoryService *services.DirectoryService) *OrganizationHandler {
	return &OrganizationHandler{
		directoryService: directoryService,
	}
}

// CreateOrganization creates a new organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	type CreateOrgRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email"`
		Location string `json:"location"`
	}

	var req CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	org, err := h.directoryService.CreateOrganization(services.CreateOrganizationInput{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrganizationName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Insert failures are logged, not echoed back
		log.Printf("Error adding organization: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(*org))
}
