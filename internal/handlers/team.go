package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	"github.com/sakimura/org-directory-api/internal/services"
)

type TeamHandler struct {
	directoryService *services.DirectoryService
}

func NewTeamHandler(directoryService *services.DirectoryService) *TeamHandler {
	return &TeamHandler{
		directoryService: directoryService,
	}
}

// CreateTeam creates a new team under an organization
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		Name           string `json:"name" binding:"required"`
		OrganizationID uint64 `json:"organization_id" binding:"required"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	team, err := h.directoryService.CreateTeam(services.CreateTeamInput{
		Name:           req.Name,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTeamName) || errors.Is(err, services.ErrMissingOrganizationID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adding team: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}
