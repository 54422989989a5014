// Package redis implements the persistence gateway on a Redis-compatible
// document store. Records are JSON documents addressed hierarchically:
// couple records live at couples/{key}, and each per-couple collection
// (notes, moods, letters, journal) is a hash keyed by record id so that
// every operation stays a single path-scoped read or write.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
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

// Config holds connection settings for the document store.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store is the Redis-backed persistence gateway.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

var _ storage.Store = (*Store)(nil)

// New connects to the document store and verifies the connection.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	return &Store{client: client, now: time.Now}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.client.Close() }

func (s *Store) nowMillis() int64 { return s.now().UnixMilli() }

// CoupleStore implementation -------------------------------------------------

func (s *Store) GetCouple(ctx context.Context, key string) (couple.Couple, error) {
	raw, err := s.client.Get(ctx, storage.CouplePath(key)).Result()
	if err == redis.Nil {
		return couple.Couple{}, storage.ErrNotFound
	}
	if err != nil {
		return couple.Couple{}, fmt.Errorf("get couple: %w", err)
	}

	var c couple.Couple
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return couple.Couple{}, fmt.Errorf("decode couple %s: %w", key, err)
	}
	return c, nil
}

func (s *Store) CreateCouple(ctx context.Context, req couple.RegisterRequest) (couple.Couple, error) {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key, err := couple.NewKey()
		if err != nil {
			return couple.Couple{}, err
		}

		c := couple.Couple{
			ID:        key,
			Key:       key,
			Name1:     req.Name1,
			Name2:     req.Name2,
			CreatedAt: s.nowMillis(),
		}

		raw, err := json.Marshal(c)
		if err != nil {
			return couple.Couple{}, fmt.Errorf("encode couple: %w", err)
		}

		// SetNX is the occupancy check: it only claims the path if no
		// couple already lives there.
		claimed, err := s.client.SetNX(ctx, storage.CouplePath(key), raw, 0).Result()
		if err != nil {
			return couple.Couple{}, fmt.Errorf("create couple: %w", err)
		}
		if claimed {
			return c, nil
		}
	}

	return couple.Couple{}, fmt.Errorf("couple key space exhausted after %d attempts", maxKeyAttempts)
}

// NoteStore implementation ---------------------------------------------------

func (s *Store) ListNotes(ctx context.Context, coupleID string) ([]note.Note, error) {
	fields, err := s.client.HGetAll(ctx, storage.NotesPath(coupleID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	now := s.nowMillis()
	notes := make([]note.Note, 0, len(fields))
	for id, raw := range fields {
		var n note.Note
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("decode note %s: %w", id, err)
		}
		if n.Expired(now) {
			continue
		}
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt > notes[j].CreatedAt })
	return notes, nil
}

func (s *Store) CreateNote(ctx context.Context, coupleID string, req note.CreateRequest) (note.Note, error) {
	now := s.nowMillis()
	n := note.Note{
		ID:         uuid.NewString(),
		Content:    req.Content,
		AuthorName: req.AuthorName,
		CreatedAt:  now,
		ExpiresAt:  now + note.TTL.Milliseconds(),
	}

	if err := s.setRecord(ctx, storage.NotesPath(coupleID), n.ID, n); err != nil {
		return note.Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (s *Store) DeleteNote(ctx context.Context, coupleID, noteID string) error {
	removed, err := s.client.HDel(ctx, storage.NotesPath(coupleID), noteID).Result()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if removed == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MoodStore implementation ---------------------------------------------------

func (s *Store) ListMoods(ctx context.Context, coupleID string) (map[string]mood.Mood, error) {
	fields, err := s.client.HGetAll(ctx, storage.MoodsPath(coupleID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}

	moods := make(map[string]mood.Mood, len(fields))
	for author, raw := range fields {
		var m mood.Mood
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("decode mood %s: %w", author, err)
		}
		moods[author] = m
	}
	return moods, nil
}

func (s *Store) UpdateMood(ctx context.Context, coupleID string, req mood.UpdateRequest) (mood.Mood, error) {
	m := mood.Mood{
		Status:     req.Status,
		Color:      req.Color,
		Icon:       req.Icon,
		Context:    req.Context,
		Timestamp:  s.nowMillis(),
		AuthorName: req.AuthorName,
	}

	if err := s.setRecord(ctx, storage.MoodsPath(coupleID), req.AuthorName, m); err != nil {
		return mood.Mood{}, fmt.Errorf("update mood: %w", err)
	}
	return m, nil
}

// LetterStore implementation -------------------------------------------------

func (s *Store) ListLetters(ctx context.Context, coupleID string) ([]letter.Letter, error) {
	fields, err := s.client.HGetAll(ctx, storage.LettersPath(coupleID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}

	letters := make([]letter.Letter, 0, len(fields))
	for id, raw := range fields {
		var l letter.Letter
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("decode letter %s: %w", id, err)
		}
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i].CreatedAt > letters[j].CreatedAt })
	return letters, nil
}

func (s *Store) CreateLetter(ctx context.Context, coupleID string, req letter.CreateRequest) (letter.Letter, error) {
	l := letter.Letter{
		ID:        uuid.NewString(),
		Content:   req.Content,
		IsSealed:  true,
		CreatedAt: s.nowMillis(),
	}

	if err := s.setRecord(ctx, storage.LettersPath(coupleID), l.ID, l); err != nil {
		return letter.Letter{}, fmt.Errorf("create letter: %w", err)
	}
	return l, nil
}

func (s *Store) OpenLetter(ctx context.Context, coupleID, letterID string) (letter.Letter, error) {
	l, err := s.getLetter(ctx, coupleID, letterID)
	if err != nil {
		return letter.Letter{}, err
	}

	if l.Open(s.nowMillis()) {
		if err := s.setRecord(ctx, storage.LettersPath(coupleID), letterID, l); err != nil {
			return letter.Letter{}, fmt.Errorf("open letter: %w", err)
		}
	}
	return l, nil
}

func (s *Store) ArchiveLetter(ctx context.Context, coupleID, letterID string) (letter.Letter, error) {
	l, err := s.getLetter(ctx, coupleID, letterID)
	if err != nil {
		return letter.Letter{}, err
	}

	if l.Archive() {
		if err := s.setRecord(ctx, storage.LettersPath(coupleID), letterID, l); err != nil {
			return letter.Letter{}, fmt.Errorf("archive letter: %w", err)
		}
	}
	return l, nil
}

func (s *Store) getLetter(ctx context.Context, coupleID, letterID string) (letter.Letter, error) {
	raw, err := s.client.HGet(ctx, storage.LettersPath(coupleID), letterID).Result()
	if err == redis.Nil {
		return letter.Letter{}, storage.ErrNotFound
	}
	if err != nil {
		return letter.Letter{}, fmt.Errorf("get letter: %w", err)
	}

	var l letter.Letter
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return letter.Letter{}, fmt.Errorf("decode letter %s: %w", letterID, err)
	}
	return l, nil
}

// JournalStore implementation ------------------------------------------------

func (s *Store) ListJournalEntries(ctx context.Context, coupleID string) ([]journal.Entry, error) {
	fields, err := s.client.HGetAll(ctx, storage.JournalPath(coupleID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	entries := make([]journal.Entry, 0, len(fields))
	for id, raw := range fields {
		var e journal.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode journal entry %s: %w", id, err)
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt > entries[j].CreatedAt })
	return entries, nil
}

func (s *Store) CreateJournalEntry(ctx context.Context, coupleID string, req journal.CreateRequest) (journal.Entry, error) {
	e := journal.Entry{
		ID:        uuid.NewString(),
		Content:   req.Content,
		Date:      req.Date,
		CreatedAt: s.nowMillis(),
	}

	if err := s.setRecord(ctx, storage.JournalPath(coupleID), e.ID, e); err != nil {
		return journal.Entry{}, fmt.Errorf("create journal entry: %w", err)
	}
	return e, nil
}

// setRecord writes one JSON record into a collection hash.
func (s *Store) setRecord(ctx context.Context, path, id string, record interface{}) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", id, err)
	}
	return s.client.HSet(ctx, path, id, raw).Err()
}
