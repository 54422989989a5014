// Package memory provides an in-memory implementation of the storage
// interfaces. It is safe for concurrent use and is primarily intended for
// tests and local development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/domain/journal"
	"github.com/pairspace/backend/internal/domain/letter"
	"github.com/pairspace/backend/internal/domain/mood"
	"github.com/pairspace/backend/internal/domain/note"
	"github.com/pairspace/backend/internal/storage"
)

// maxKeyAttempts bounds couple key generation retries on collision.
const maxKeyAttempts = 8

// Store is the in-memory persistence gateway.
type Store struct {
	mu      sync.RWMutex
	couples map[string]couple.Couple
	notes   map[string]map[string]note.Note
	moods   map[string]map[string]mood.Mood
	letters map[string]map[string]letter.Letter
	journal map[string]map[string]journal.Entry

	// now is overridable so tests can control expiry and timestamps.
	now func() time.Time
}

var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		couples: make(map[string]couple.Couple),
		notes:   make(map[string]map[string]note.Note),
		moods:   make(map[string]map[string]mood.Mood),
		letters: make(map[string]map[string]letter.Letter),
		journal: make(map[string]map[string]journal.Entry),
		now:     time.Now,
	}
}

// SetNow overrides the store's clock. Intended for tests.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// CoupleStore implementation -------------------------------------------------

func (s *Store) GetCouple(_ context.Context, key string) (couple.Couple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.couples[key]
	if !ok {
		return couple.Couple{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) CreateCouple(_ context.Context, req couple.RegisterRequest) (couple.Couple, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key, err := couple.NewKey()
		if err != nil {
			return couple.Couple{}, err
		}
		if _, taken := s.couples[key]; taken {
			continue
		}

		c := couple.Couple{
			ID:        key,
			Key:       key,
			Name1:     req.Name1,
			Name2:     req.Name2,
			CreatedAt: s.nowMillis(),
		}
		s.couples[key] = c
		return c, nil
	}

	return couple.Couple{}, fmt.Errorf("couple key space exhausted after %d attempts", maxKeyAttempts)
}

// NoteStore implementation ---------------------------------------------------

func (s *Store) ListNotes(_ context.Context, coupleID string) ([]note.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.nowMillis()
	notes := make([]note.Note, 0, len(s.notes[coupleID]))
	for _, n := range s.notes[coupleID] {
		if n.Expired(now) {
			continue
		}
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt > notes[j].CreatedAt })
	return notes, nil
}

func (s *Store) CreateNote(_ context.Context, coupleID string, req note.CreateRequest) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowMillis()
	n := note.Note{
		ID:         uuid.NewString(),
		Content:    req.Content,
		AuthorName: req.AuthorName,
		CreatedAt:  now,
		ExpiresAt:  now + note.TTL.Milliseconds(),
	}

	if s.notes[coupleID] == nil {
		s.notes[coupleID] = make(map[string]note.Note)
	}
	s.notes[coupleID][n.ID] = n
	return n, nil
}

func (s *Store) DeleteNote(_ context.Context, coupleID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[coupleID][noteID]; !ok {
		return storage.ErrNotFound
	}
	delete(s.notes[coupleID], noteID)
	return nil
}

// MoodStore implementation ---------------------------------------------------

func (s *Store) ListMoods(_ context.Context, coupleID string) (map[string]mood.Mood, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	moods := make(map[string]mood.Mood, len(s.moods[coupleID]))
	for author, m := range s.moods[coupleID] {
		moods[author] = m
	}
	return moods, nil
}

func (s *Store) UpdateMood(_ context.Context, coupleID string, req mood.UpdateRequest) (mood.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := mood.Mood{
		Status:     req.Status,
		Color:      req.Color,
		Icon:       req.Icon,
		Context:    req.Context,
		Timestamp:  s.nowMillis(),
		AuthorName: req.AuthorName,
	}

	if s.moods[coupleID] == nil {
		s.moods[coupleID] = make(map[string]mood.Mood)
	}
	s.moods[coupleID][req.AuthorName] = m
	return m, nil
}

// LetterStore implementation -------------------------------------------------

func (s *Store) ListLetters(_ context.Context, coupleID string) ([]letter.Letter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	letters := make([]letter.Letter, 0, len(s.letters[coupleID]))
	for _, l := range s.letters[coupleID] {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i].CreatedAt > letters[j].CreatedAt })
	return letters, nil
}

func (s *Store) CreateLetter(_ context.Context, coupleID string, req letter.CreateRequest) (letter.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := letter.Letter{
		ID:        uuid.NewString(),
		Content:   req.Content,
		IsSealed:  true,
		CreatedAt: s.nowMillis(),
	}

	if s.letters[coupleID] == nil {
		s.letters[coupleID] = make(map[string]letter.Letter)
	}
	s.letters[coupleID][l.ID] = l
	return l, nil
}

func (s *Store) OpenLetter(_ context.Context, coupleID, letterID string) (letter.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.letters[coupleID][letterID]
	if !ok {
		return letter.Letter{}, storage.ErrNotFound
	}
	if l.Open(s.nowMillis()) {
		s.letters[coupleID][letterID] = l
	}
	return l, nil
}

func (s *Store) ArchiveLetter(_ context.Context, coupleID, letterID string) (letter.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.letters[coupleID][letterID]
	if !ok {
		return letter.Letter{}, storage.ErrNotFound
	}
	if l.Archive() {
		s.letters[coupleID][letterID] = l
	}
	return l, nil
}

// JournalStore implementation ------------------------------------------------

func (s *Store) ListJournalEntries(_ context.Context, coupleID string) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]journal.Entry, 0, len(s.journal[coupleID]))
	for _, e := range s.journal[coupleID] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt > entries[j].CreatedAt })
	return entries, nil
}

func (s *Store) CreateJournalEntry(_ context.Context, coupleID string, req journal.CreateRequest) (journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := journal.Entry{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Date:      req.Date,
		CreatedAt: s.nowMillis(),
	}

	if s.journal[coupleID] == nil {
		s.journal[coupleID] = make(map[string]journal.Entry)
	}
	s.journal[coupleID][e.ID] = e
	return e, nil
}
