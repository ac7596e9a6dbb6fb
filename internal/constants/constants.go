package constants

// Session keys for the browser-facing directory view
const (
	SessionName             = "directory_session"
	SessionKeyExpandedOrgs  = "expanded_orgs"
	SessionKeyExpandedTeams = "expanded_teams"
)
