package dto

import (
	"github.com/sakimura/org-directory-api/internal/tree"
)

// DirectoryResponse is the envelope for the rendered tree view. Error and
// Loading mirror the loader state: a failed fetch surfaces its message here
// while the organizations keep their last successfully fetched value.
type DirectoryResponse struct {
	Loading       bool                    `json:"loading"`
	Error         string                  `json:"error,omitempty"`
	Organizations []tree.OrganizationNode `json:"organizations"`
}

// ToggleResponse reports a node's expansion state after a toggle
type ToggleResponse struct {
	ID       uint64 `json:"id"`
	Expanded bool   `json:"expanded"`
}

// UploadResponse carries the cache-busted public URL of a stored image
type UploadResponse struct {
	URL string `json:"url"`
}
