package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/dto"
	apierrors "github.com/sakimura/org-directory-api/internal/errors"
	"github.com/sakimura/org-directory-api/internal/middleware"
	"github.com/sakimura/org-directory-api/internal/services"
	"github.com/sakimura/org-directory-api/internal/tree"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// GetDirectory renders the collapsible tree for the current viewer. The
// tree is built from the flat snapshots and the viewer's expansion sets;
// the response also carries the loader's loading/error state.
func (h *DirectoryHandler) GetDirectory(c *gin.Context) {
	snap := h.directoryService.Snapshot()
	expandedOrgs, expandedTeams := middleware.GetExpansionState(c)

	nodes := tree.Build(snap.Organizations, snap.Teams, snap.Members, expandedOrgs, expandedTeams)

	c.JSON(http.StatusOK, dto.DirectoryResponse{
		Loading:       snap.Loading,
		Error:         snap.Error,
		Organizations: nodes,
	})
}

// ToggleOrganization flips an organization's expansion state for the
// current viewer
func (h *DirectoryHandler) ToggleOrganization(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
		return
	}

	expandedOrgs, expandedTeams := middleware.GetExpansionState(c)
	expanded := expandedOrgs.Toggle(id)
	if err := middleware.SaveExpansionState(c, expandedOrgs, expandedTeams); err != nil {
		apierrors.InternalError(c, "Failed to save view state")
		return
	}

	c.JSON(http.StatusOK, dto.ToggleResponse{ID: id, Expanded: expanded})
}

// ToggleTeam flips a team's expansion state for the current viewer
func (h *DirectoryHandler) ToggleTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team id"})
		return
	}

	expandedOrgs, expandedTeams := middleware.GetExpansionState(c)
	expanded := expandedTeams.Toggle(id)
	if err := middleware.SaveExpansionState(c, expandedOrgs, expandedTeams); err != nil {
		apierrors.InternalError(c, "Failed to save view state")
		return
	}

	c.JSON(http.StatusOK, dto.ToggleResponse{ID: id, Expanded: expanded})
}

// Refresh re-runs all three fetches and returns the refreshed tree
func (h *DirectoryHandler) Refresh(c *gin.Context) {
	h.directoryService.Refresh()
	h.GetDirectory(c)
}

// ListOrganizations returns the nested organizations snapshot as fetched,
// teams and members included
func (h *DirectoryHandler) ListOrganizations(c *gin.Context) {
	snap := h.directoryService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"organizations": snap.Organizations,
	})
}

// ListTeams returns the flat teams snapshot
func (h *DirectoryHandler) ListTeams(c *gin.Context) {
	snap := h.directoryService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"teams": snap.Teams,
	})
}

// ListMembers returns the flat members snapshot
func (h *DirectoryHandler) ListMembers(c *gin.Context) {
	snap := h.directoryService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"members": snap.Members,
	})
}
