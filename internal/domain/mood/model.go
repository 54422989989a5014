// Package mood defines the per-author mood status record.
package mood

import (
	"strings"

	"github.com/pairspace/backend/internal/errors"
)

// Mood is the single active status for one author within a couple. It is
// overwritten in place on every update; no history is kept.
type Mood struct {
	Status     string `json:"status"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	Context    string `json:"context,omitempty"`
	Timestamp  int64  `json:"timestamp"`
	AuthorName string `json:"authorName"`
}

// UpdateRequest is a mood without its server-set timestamp. Color and icon are
// free-form strings chosen client-side; the server does not constrain them.
type UpdateRequest struct {
	Status     string `json:"status"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	Context    string `json:"context,omitempty"`
	AuthorName string `json:"authorName"`
}

// Validate checks the update input.
func (r UpdateRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return errors.Validation("status is required")
	}
	if strings.TrimSpace(r.AuthorName) == "" {
		return errors.Validation("authorName is required")
	}
	return nil
}
