package middleware

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/constants"
	"github.com/sakimura/org-directory-api/internal/tree"
)

func init() {
	// Expansion sets are stored in the cookie session as id slices
	gob.Register([]uint64{})
}

// GetExpansionState reads the viewer's expanded organization and team sets
// from the session. A missing or malformed value yields an empty set, which
// renders everything collapsed.
func GetExpansionState(c *gin.Context) (tree.IDSet, tree.IDSet) {
	session := sessions.Default(c)
	return idSetFromSession(session, constants.SessionKeyExpandedOrgs),
		idSetFromSession(session, constants.SessionKeyExpandedTeams)
}

// SaveExpansionState writes the expansion sets back to the session.
func SaveExpansionState(c *gin.Context, expandedOrgs, expandedTeams tree.IDSet) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyExpandedOrgs, expandedOrgs.IDs())
	session.Set(constants.SessionKeyExpandedTeams, expandedTeams.IDs())
	return session.Save()
}

func idSetFromSession(session sessions.Session, key string) tree.IDSet {
	value := session.Get(key)
	ids, ok := value.([]uint64)
	if !ok {
		return tree.IDSet{}
	}
	return tree.FromIDs(ids)
}
