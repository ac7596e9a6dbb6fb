// Package tree assembles the organization → teams → members view served to
// the browser. Building a view is a pure function of the three snapshots and
// the expansion sets; nothing here touches the database.
package tree

import (
	"github.com/sakimura/org-directory-api/internal/models"
)

// Avatar status labels and their visual accents
const (
	StatusImageUploaded    = "Image Uploaded"
	StatusImageNotUploaded = "Image Not Uploaded"
	AccentUploaded         = "green"
	AccentNotUploaded      = "red"
)

// IDSet is a set of entity identifiers currently shown expanded. Keying by
// identifier rather than position means toggling one node never disturbs
// another's state.
type IDSet map[uint64]bool

// Has reports whether id is in the set.
func (s IDSet) Has(id uint64) bool {
	return s[id]
}

// Toggle flips membership of id and reports the resulting state.
func (s IDSet) Toggle(id uint64) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

// IDs returns the set's members as a slice, for serialization.
func (s IDSet) IDs() []uint64 {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// FromIDs builds an IDSet from a slice of identifiers.
func FromIDs(ids []uint64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// MemberRow is a rendered member line: name, email, identifier and avatar.
type MemberRow struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	HasImage     bool   `json:"has_image"`
	ImageStatus  string `json:"image_status"`
	StatusAccent string `json:"status_accent"`
}

// TeamNode is a team with its members, rendered only when expanded.
type TeamNode struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	Expanded bool        `json:"expanded"`
	Members  []MemberRow `json:"members,omitempty"`
}

// OrganizationNode is a top-level tree node.
type OrganizationNode struct {
	ID       uint64     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	Location string     `json:"location,omitempty"`
	Expanded bool       `json:"expanded"`
	Teams    []TeamNode `json:"teams,omitempty"`
}

// Build renders the nested view. Organizations keep the order they were
// fetched in (the fetch is name-sorted server-side). Children are filtered
// from the flat snapshots by foreign-key equality, not taken from the nested
// include, and only materialized under expanded nodes.
func Build(orgs []models.Organization, teams []models.Team, members []models.Member, expandedOrgs, expandedTeams IDSet) []OrganizationNode {
	nodes := make([]OrganizationNode, 0, len(orgs))
	for _, org := range orgs {
		node := OrganizationNode{
			ID:       org.ID,
			Name:     org.Name,
			Email:    org.Email,
			Location: org.Location,
			Expanded: expandedOrgs.Has(org.ID),
		}

		if node.Expanded {
			for _, team := range teams {
				if team.OrganizationID != org.ID {
					continue
				}
				node.Teams = append(node.Teams, buildTeamNode(team, members, expandedTeams))
			}
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func buildTeamNode(team models.Team, members []models.Member, expandedTeams IDSet) TeamNode {
	node := TeamNode{
		ID:       team.ID,
		Name:     team.Name,
		Expanded: expandedTeams.Has(team.ID),
	}

	if node.Expanded {
		for _, member := range members {
			if member.TeamID != team.ID {
				continue
			}
			node.Members = append(node.Members, buildMemberRow(member))
		}
	}

	return node
}

func buildMemberRow(member models.Member) MemberRow {
	row := MemberRow{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		AvatarURL: member.ProfileImage,
		HasImage:  member.ProfileImage != "",
	}
	if row.HasImage {
		row.ImageStatus = StatusImageUploaded
		row.StatusAccent = AccentUploaded
	} else {
		row.ImageStatus = StatusImageNotUploaded
		row.StatusAccent = AccentNotUploaded
	}
	return row
}
