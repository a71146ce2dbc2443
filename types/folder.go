package types

import "time"

type CreateFolderReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parentId"`
}

// UpdateFolderReq is a partial update; nil means "leave unchanged". Moving a
// folder back to the root is signalled by an explicit null parentId in the
// raw body, which the handler detects separately.
type UpdateFolderReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId"`
}

type FolderResp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    *int64    `json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FolderTreeNode embeds children recursively; Children is always non-nil so
// leaves serialize as [] rather than null.
type FolderTreeNode struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	ParentID    *int64            `json:"parentId"`
	Children    []*FolderTreeNode `json:"children"`
}

// FolderFlatItem carries the computed path and depth for the flat listing.
type FolderFlatItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parentId"`
	Path        string `json:"path"`
	Depth       int    `json:"depth"`
}
