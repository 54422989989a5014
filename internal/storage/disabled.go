package storage

import (
	"context"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/domain/journal"
	"github.com/pairspace/backend/internal/domain/letter"
	"github.com/pairspace/backend/internal/domain/mood"
	"github.com/pairspace/backend/internal/domain/note"
)

// Disabled is the store installed when no backend is configured. The server
// stays up and serves requests; every data operation fails with
// ErrNotInitialized.
type Disabled struct{}

var _ Store = Disabled{}

func (Disabled) GetCouple(context.Context, string) (couple.Couple, error) {
	return couple.Couple{}, ErrNotInitialized
}

func (Disabled) CreateCouple(context.Context, couple.RegisterRequest) (couple.Couple, error) {
	return couple.Couple{}, ErrNotInitialized
}

func (Disabled) ListNotes(context.Context, string) ([]note.Note, error) {
	return nil, ErrNotInitialized
}

func (Disabled) CreateNote(context.Context, string, note.CreateRequest) (note.Note, error) {
	return note.Note{}, ErrNotInitialized
}

func (Disabled) DeleteNote(context.Context, string, string) error {
	return ErrNotInitialized
}

func (Disabled) ListMoods(context.Context, string) (map[string]mood.Mood, error) {
	return nil, ErrNotInitialized
}

func (Disabled) UpdateMood(context.Context, string, mood.UpdateRequest) (mood.Mood, error) {
	return mood.Mood{}, ErrNotInitialized
}

func (Disabled) ListLetters(context.Context, string) ([]letter.Letter, error) {
	return nil, ErrNotInitialized
}

func (Disabled) CreateLetter(context.Context, string, letter.CreateRequest) (letter.Letter, error) {
	return letter.Letter{}, ErrNotInitialized
}

func (Disabled) OpenLetter(context.Context, string, string) (letter.Letter, error) {
	return letter.Letter{}, ErrNotInitialized
}

func (Disabled) ArchiveLetter(context.Context, string, string) (letter.Letter, error) {
	return letter.Letter{}, ErrNotInitialized
}

func (Disabled) ListJournalEntries(context.Context, string) ([]journal.Entry, error) {
	return nil, ErrNotInitialized
}

func (Disabled) CreateJournalEntry(context.Context, string, journal.CreateRequest) (journal.Entry, error) {
	return journal.Entry{}, ErrNotInitialized
}
