// Package journal defines the shared journal entry record.
package journal

import (
	"strings"

	"github.com/pairspace/backend/internal/errors"
)

// Entry is one journal entry. Date is the user-chosen calendar date
// (YYYY-MM-DD), distinct from CreatedAt. Entries are immutable once created.
type Entry struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt int64  `json:"createdAt"`
}

// CreateRequest creates a journal entry.
type CreateRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Validate checks the creation input.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.Validation("content is required")
	}
	if strings.TrimSpace(r.Date) == "" {
		return errors.Validation("date is required")
	}
	return nil
}
