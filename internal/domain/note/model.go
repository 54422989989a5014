// Package note defines the ephemeral note record.
package note

import (
	"strings"
	"time"

	"github.com/pairspace/backend/internal/errors"
)

// TTL is how long a note stays visible after creation. Expiry is soft: an
// expired note is filtered out of list results, not deleted.
const TTL = 24 * time.Hour

// Note is an ephemeral message between the two partners.
type Note struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	CreatedAt  int64  `json:"createdAt"`
	ExpiresAt  int64  `json:"expiresAt"`
}

// Expired reports whether the note should be hidden at the given time
// (epoch millis).
func (n Note) Expired(nowMillis int64) bool {
	return n.ExpiresAt <= nowMillis
}

// CreateRequest creates a note. AuthorName is optional and stored as given.
type CreateRequest struct {
	Content    string `json:"content"`
	AuthorName string `json:"authorName,omitempty"`
}

// Validate checks the creation input.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.Validation("content is required")
	}
	return nil
}
