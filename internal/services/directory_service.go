package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sakimura/org-directory-api/internal/models"
	"github.com/sakimura/org-directory-api/internal/repository"
)

var (
	ErrInvalidOrganizationName = errors.New("organization name cannot be empty")
	ErrInvalidTeamName         = errors.New("team name cannot be empty")
	ErrMissingOrganizationID   = errors.New("organization is required")
	ErrInvalidMemberName       = errors.New("name is required")
	ErrInvalidMemberEmail      = errors.New("please enter a valid email address")
	ErrMissingTeamID           = errors.New("please select a team")
)

// genericFetchError stands in when the backend reports a failure without a
// usable message.
const genericFetchError = "An error occurred while fetching data"

// DirectoryService owns the three in-memory snapshots behind the directory
// view: organizations with their nested teams and members, flat teams, and
// flat members. The snapshots are independently fetched, eventually stale,
// and only replaced wholesale by a successful re-fetch.
type DirectoryService struct {
	orgRepo    repository.OrganizationRepository
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository

	mu            sync.Mutex
	organizations []models.Organization
	teams         []models.Team
	members       []models.Member
	lastError     string
	loading       bool
}

// DirectorySnapshot is a point-in-time copy of the service's state.
type DirectorySnapshot struct {
	Organizations []models.Organization
	Teams         []models.Team
	Members       []models.Member
	Loading       bool
	Error         string
}

// NewDirectoryService creates a DirectoryService. The service starts in the
// loading state until the first organizations fetch settles.
func NewDirectoryService(orgRepo repository.OrganizationRepository, teamRepo repository.TeamRepository, memberRepo repository.MemberRepository) *DirectoryService {
	return &DirectoryService{
		orgRepo:    orgRepo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		loading:    true,
	}
}

// Refresh runs all three fetches concurrently. The fetches are independent:
// a failure of one never prevents the others from running, and each snapshot
// is only replaced by its own successful fetch. When refreshes overlap the
// last writer wins.
func (s *DirectoryService) Refresh() {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.RefreshOrganizations()
	}()
	go func() {
		defer wg.Done()
		s.RefreshTeams()
	}()
	go func() {
		defer wg.Done()
		s.RefreshMembers()
	}()
	wg.Wait()
}

// RefreshOrganizations re-fetches the name-ordered organizations tree. The
// loading flag clears once this fetch settles, success or failure, without
// waiting for the team and member fetches.
func (s *DirectoryService) RefreshOrganizations() {
	orgs, err := s.orgRepo.ListWithHierarchy()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = fetchErrorMessage(err)
	} else {
		s.organizations = orgs
	}
	s.loading = false
}

// RefreshTeams re-fetches the flat teams snapshot.
func (s *DirectoryService) RefreshTeams() {
	teams, err := s.teamRepo.List()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = fetchErrorMessage(err)
		return
	}
	s.teams = teams
}

// RefreshMembers re-fetches the flat members snapshot.
func (s *DirectoryService) RefreshMembers() {
	members, err := s.memberRepo.List()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = fetchErrorMessage(err)
		return
	}
	s.members = members
}

// Snapshot returns the current state. The slices are shared with the service
// but are never mutated in place; re-fetches swap in fresh slices.
func (s *DirectoryService) Snapshot() DirectorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DirectorySnapshot{
		Organizations: s.organizations,
		Teams:         s.teams,
		Members:       s.members,
		Loading:       s.loading,
		Error:         s.lastError,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name     string
	Email    string
	Location string
}

// CreateOrganization inserts an organization and re-fetches the
// organizations snapshot.
func (s *DirectoryService) CreateOrganization(input CreateOrganizationInput) (*models.Organization, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidOrganizationName
	}

	org := &models.Organization{
		Name:     input.Name,
		Email:    input.Email,
		Location: input.Location,
	}

	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.RefreshOrganizations()
	return org, nil
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name           string
	OrganizationID uint64
}

// CreateTeam inserts a team, then re-fetches the teams snapshot and,
// separately, the organizations tree it appears nested under.
func (s *DirectoryService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidTeamName
	}
	if input.OrganizationID == 0 {
		return nil, ErrMissingOrganizationID
	}

	team := &models.Team{
		Name:           input.Name,
		OrganizationID: input.OrganizationID,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.RefreshTeams()
	s.RefreshOrganizations()
	return team, nil
}

// CreateMemberInput represents parameters to create a new member.
type CreateMemberInput struct {
	Name         string
	Email        string
	TeamID       uint64
	ProfileImage string
}

// CreateMember inserts a member, then re-fetches the members snapshot and
// the organizations tree.
func (s *DirectoryService) CreateMember(input CreateMemberInput) (*models.Member, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidMemberName
	}
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return nil, ErrInvalidMemberEmail
	}
	if input.TeamID == 0 {
		return nil, ErrMissingTeamID
	}

	member := &models.Member{
		Name:         input.Name,
		Email:        input.Email,
		TeamID:       input.TeamID,
		ProfileImage: input.ProfileImage,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.RefreshMembers()
	s.RefreshOrganizations()
	return member, nil
}

func fetchErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return genericFetchError
	}
	return err.Error()
}
