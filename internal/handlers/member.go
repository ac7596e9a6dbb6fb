package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	"github.com/sakimura/org-directory-api/internal/services"
)

type MemberHandler struct {
	directoryService *services.DirectoryService
}

func NewMemberHandler(directoryService *services.DirectoryService) *MemberHandler {
	return &MemberHandler{
		directoryService: directoryService,
	}
}

// CreateMember creates a new member on a team. Unlike the organization and
// team handlers, insert failures echo the backend's message so the caller
// can show it next to the preserved form draft.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	type CreateMemberRequest struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required"`
		TeamID       uint64 `json:"team_id" binding:"required"`
		ProfileImage string `json:"profile_image"`
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	member, err := h.directoryService.CreateMember(services.CreateMemberInput{
		Name:         req.Name,
		Email:        req.Email,
		TeamID:       req.TeamID,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidMemberName) ||
			errors.Is(err, services.ErrInvalidMemberEmail) ||
			errors.Is(err, services.ErrMissingTeamID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberDTO(*member))
}
