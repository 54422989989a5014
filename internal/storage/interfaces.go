// Package storage defines the persistence gateway contracts. Every operation
// is scoped by the resolved couple id and maps to a single path-addressed
// read or write against the backing document store.
package storage

import (
	"context"
	"errors"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/domain/journal"
	"github.com/pairspace/backend/internal/domain/letter"
	"github.com/pairspace/backend/internal/domain/mood"
	"github.com/pairspace/backend/internal/domain/note"
)

// ErrNotFound reports that the targeted record does not exist. Handlers map
// it to 404; GetCouple callers map it to an authorization failure.
var ErrNotFound = errors.New("record not found")

// ErrNotInitialized reports that no document store is configured. Operations
// fail fast with it instead of silently returning empty results.
var ErrNotInitialized = errors.New("document store not initialized")

// CoupleStore persists couple records.
type CoupleStore interface {
	// GetCouple looks up a couple by its shared key. Returns ErrNotFound
	// when the key resolves to nothing.
	GetCouple(ctx context.Context, key string) (couple.Couple, error)
	// CreateCouple registers a new couple under a freshly generated key.
	// Key generation retries on collision a bounded number of times.
	CreateCouple(ctx context.Context, req couple.RegisterRequest) (couple.Couple, error)
}

// NoteStore persists ephemeral notes.
type NoteStore interface {
	// ListNotes returns unexpired notes, newest first.
	ListNotes(ctx context.Context, coupleID string) ([]note.Note, error)
	CreateNote(ctx context.Context, coupleID string, req note.CreateRequest) (note.Note, error)
	// DeleteNote removes a note; ErrNotFound when the id does not exist.
	DeleteNote(ctx context.Context, coupleID, noteID string) error
}

// MoodStore persists the per-author mood map.
type MoodStore interface {
	// ListMoods returns the full author->mood map; empty map when none.
	ListMoods(ctx context.Context, coupleID string) (map[string]mood.Mood, error)
	// UpdateMood stamps the server timestamp and replaces the author's
	// current mood.
	UpdateMood(ctx context.Context, coupleID string, req mood.UpdateRequest) (mood.Mood, error)
}

// LetterStore persists sealed letters. Open and Archive are idempotent;
// archiving a still-sealed letter is permitted and never touches openedAt.
type LetterStore interface {
	ListLetters(ctx context.Context, coupleID string) ([]letter.Letter, error)
	CreateLetter(ctx context.Context, coupleID string, req letter.CreateRequest) (letter.Letter, error)
	OpenLetter(ctx context.Context, coupleID, letterID string) (letter.Letter, error)
	ArchiveLetter(ctx context.Context, coupleID, letterID string) (letter.Letter, error)
}

// JournalStore persists journal entries.
type JournalStore interface {
	ListJournalEntries(ctx context.Context, coupleID string) ([]journal.Entry, error)
	CreateJournalEntry(ctx context.Context, coupleID string, req journal.CreateRequest) (journal.Entry, error)
}

// Store is the full persistence gateway.
type Store interface {
	CoupleStore
	NoteStore
	MoodStore
	LetterStore
	JournalStore
}
