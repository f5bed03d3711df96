// Package browser models the read-only bookmark tree owned by the
// browser and flattens it for the merge engine. The tree is treated as
// an immutable snapshot; nothing here writes back to the platform.
package browser

import "time"

// Node is one entry of the browser bookmark tree. A node with a URL is
// a leaf bookmark; a node with children is a folder; a node with
// neither is an empty folder and produces no output.
type Node struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	DateAdded int64  `json:"dateAdded,omitempty"` // epoch milliseconds, 0 = unknown
	Children  []Node `json:"children,omitempty"`
}

// FlatBookmark is one flattened tree entry. FolderName is the nearest
// enclosing folder's raw title, not a path; "" means top level. Reserved
// root-container titles are reported as-is, mapping them to the default
// folder is the merge engine's call.
type FlatBookmark struct {
	Title      string
	URL        string
	DateAdded  time.Time
	FolderName string
}
