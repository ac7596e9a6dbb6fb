package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sakimura/org-directory-api/internal/dto"
	"github.com/sakimura/org-directory-api/internal/models"
	"github.com/stretchr/testify/require"
)

func seedTeam(t *testing.T, env directoryTestEnv) models.Team {
	t.Helper()
	org := models.Organization{Name: "Acme"}
	require.NoError(t, env.db.Create(&org).Error)
	team := models.Team{Name: "Platform", OrganizationID: org.ID}
	require.NoError(t, env.db.Create(&team).Error)
	return team
}

func TestMemberHandler_CreateMember(t *testing.T) {
	env := setupDirectoryTestEnv(t)
	team := seedTeam(t, env)
	env.directoryService.Refresh()

	payload := map[string]any{
		"name":    "Jane",
		"email":   "jane@x.com",
		"team_id": team.ID,
	}
	w := env.do(t, http.MethodPost, "/api/members", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Jane", resp.Name)
	require.Equal(t, team.ID, resp.TeamID)
	require.Empty(t, resp.ProfileImage)

	// Exactly the persisted fields landed in the row
	var stored models.Member
	require.NoError(t, env.db.First(&stored, resp.ID).Error)
	require.Equal(t, "Jane", stored.Name)
	require.Equal(t, "jane@x.com", stored.Email)
	require.Equal(t, team.ID, stored.TeamID)
	require.Empty(t, stored.ProfileImage)
}

func TestMemberHandler_CreateMember_WithProfileImage(t *testing.T) {
	env := setupDirectoryTestEnv(t)
	team := seedTeam(t, env)

	payload := map[string]any{
		"name":          "Jane",
		"email":         "jane@x.com",
		"team_id":       team.ID,
		"profile_image": "https://cdn.test/profile-images/abc.png?_=1700000000000",
	}
	w := env.do(t, http.MethodPost, "/api/members", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MemberDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "https://cdn.test/profile-images/abc.png?_=1700000000000", resp.ProfileImage)
}

func TestMemberHandler_CreateMember_InvalidEmail(t *testing.T) {
	env := setupDirectoryTestEnv(t)
	team := seedTeam(t, env)

	payload := map[string]any{
		"name":    "Jane",
		"email":   "not-an-email",
		"team_id": team.ID,
	}
	w := env.do(t, http.MethodPost, "/api/members", payload, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body["error"], "valid email")

	// Rejected client-side of the insert: no row was attempted
	var count int64
	env.db.Model(&models.Member{}).Count(&count)
	require.Zero(t, count)
}

func TestMemberHandler_CreateMember_MissingTeam(t *testing.T) {
	env := setupDirectoryTestEnv(t)

	payload := map[string]any{
		"name":  "Jane",
		"email": "jane@x.com",
	}
	w := env.do(t, http.MethodPost, "/api/members", payload, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
