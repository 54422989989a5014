// Package letter defines the sealed letter record and its lifecycle.
//
// A letter starts sealed, may be opened once (further opens are no-ops), and
// may be archived at any point. Archiving is visibility-terminal but the
// record persists; letters are never hard-deleted.
package letter

import (
	"strings"

	"github.com/pairspace/backend/internal/errors"
)

// Letter is a sealed message.
type Letter struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	IsSealed   bool   `json:"isSealed"`
	IsArchived bool   `json:"isArchived"`
	CreatedAt  int64  `json:"createdAt"`
	OpenedAt   int64  `json:"openedAt,omitempty"`
}

// Open unseals the letter, stamping OpenedAt with the given time (epoch
// millis). It reports whether the letter changed; opening an already-open
// letter is a no-op.
func (l *Letter) Open(nowMillis int64) bool {
	if !l.IsSealed {
		return false
	}
	l.IsSealed = false
	l.OpenedAt = nowMillis
	return true
}

// Archive marks the letter archived. Re-archiving is a no-op. Archiving does
// not require the letter to be open; the API keeps the original's permissive
// behavior here.
func (l *Letter) Archive() bool {
	if l.IsArchived {
		return false
	}
	l.IsArchived = true
	return true
}

// CreateRequest creates a letter.
type CreateRequest struct {
	Content string `json:"content"`
}

// Validate checks the creation input.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.Validation("content is required")
	}
	return nil
}
