package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairspace/backend/internal/domain/couple"
	"github.com/pairspace/backend/internal/domain/journal"
	"github.com/pairspace/backend/internal/domain/letter"
	"github.com/pairspace/backend/internal/domain/mood"
	"github.com/pairspace/backend/internal/domain/note"
	"github.com/pairspace/backend/internal/storage"
)

func TestCreateCoupleKeysAreUnique(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateCouple(ctx, couple.RegisterRequest{Name1: "A", Name2: "B"})
	require.NoError(t, err)
	second, err := s.CreateCouple(ctx, couple.RegisterRequest{Name1: "C", Name2: "D"})
	require.NoError(t, err)

	assert.Len(t, first.Key, couple.KeyLength)
	assert.NotEqual(t, first.Key, second.Key)
	assert.Equal(t, first.Key, first.ID, "the key is the identifier")

	got, err := s.GetCouple(ctx, first.Key)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestGetCoupleMissing(t *testing.T) {
	s := New()
	_, err := s.GetCouple(context.Background(), "NOPE42")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNoteExpiry(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Now()
	s.SetNow(func() time.Time { return base })

	n, err := s.CreateNote(ctx, "cpl", note.CreateRequest{Content: "see you tonight", AuthorName: "A"})
	require.NoError(t, err)
	assert.Equal(t, n.CreatedAt+note.TTL.Milliseconds(), n.ExpiresAt)

	// Just before the 24h mark the note is listed.
	s.SetNow(func() time.Time { return base.Add(note.TTL - time.Second) })
	notes, err := s.ListNotes(ctx, "cpl")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	// At the mark it is filtered out, but not deleted.
	s.SetNow(func() time.Time { return base.Add(note.TTL) })
	notes, err = s.ListNotes(ctx, "cpl")
	require.NoError(t, err)
	assert.Empty(t, notes)

	// The record is still there: deleting it succeeds.
	require.NoError(t, s.DeleteNote(ctx, "cpl", n.ID))
}

func TestNotesSortedNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Minute
		s.SetNow(func() time.Time { return base.Add(offset) })
		_, err := s.CreateNote(ctx, "cpl", note.CreateRequest{Content: "note", AuthorName: "A"})
		require.NoError(t, err)
	}

	notes, err := s.ListNotes(ctx, "cpl")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.True(t, notes[0].CreatedAt > notes[1].CreatedAt)
	assert.True(t, notes[1].CreatedAt > notes[2].CreatedAt)
}

func TestDeleteNoteMissing(t *testing.T) {
	s := New()
	err := s.DeleteNote(context.Background(), "cpl", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMoodPerAuthor(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.UpdateMood(ctx, "cpl", mood.UpdateRequest{Status: "happy", Color: "#ffd700", Icon: "sun", AuthorName: "A"})
	require.NoError(t, err)
	_, err = s.UpdateMood(ctx, "cpl", mood.UpdateRequest{Status: "tired", Color: "#708090", Icon: "cloud", AuthorName: "B"})
	require.NoError(t, err)

	moods, err := s.ListMoods(ctx, "cpl")
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "happy", moods["A"].Status)
	assert.Equal(t, "tired", moods["B"].Status)

	// Updating A replaces A's mood in place and leaves B untouched.
	_, err = s.UpdateMood(ctx, "cpl", mood.UpdateRequest{Status: "excited", Color: "#ff69b4", Icon: "star", AuthorName: "A"})
	require.NoError(t, err)

	moods, err = s.ListMoods(ctx, "cpl")
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "excited", moods["A"].Status)
	assert.Equal(t, "tired", moods["B"].Status)
}

func TestListMoodsEmpty(t *testing.T) {
	s := New()
	moods, err := s.ListMoods(context.Background(), "cpl")
	require.NoError(t, err)
	assert.NotNil(t, moods)
	assert.Empty(t, moods)
}

func TestLetterLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	l, err := s.CreateLetter(ctx, "cpl", letter.CreateRequest{Content: "dear you"})
	require.NoError(t, err)
	assert.True(t, l.IsSealed)
	assert.False(t, l.IsArchived)
	assert.Zero(t, l.OpenedAt)

	opened, err := s.OpenLetter(ctx, "cpl", l.ID)
	require.NoError(t, err)
	assert.False(t, opened.IsSealed)
	assert.NotZero(t, opened.OpenedAt)

	// Idempotent: the second open returns the same state.
	reopened, err := s.OpenLetter(ctx, "cpl", l.ID)
	require.NoError(t, err)
	assert.Equal(t, opened, reopened)

	archived, err := s.ArchiveLetter(ctx, "cpl", l.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	assert.Equal(t, opened.OpenedAt, archived.OpenedAt)
	assert.Equal(t, opened.Content, archived.Content)

	rearchived, err := s.ArchiveLetter(ctx, "cpl", l.ID)
	require.NoError(t, err)
	assert.Equal(t, archived, rearchived)
}

func TestArchiveSealedLetter(t *testing.T) {
	s := New()
	ctx := context.Background()

	l, err := s.CreateLetter(ctx, "cpl", letter.CreateRequest{Content: "for later"})
	require.NoError(t, err)

	// Archiving never requires opening first: the letter stays sealed and
	// unopened, only the archive flag flips.
	archived, err := s.ArchiveLetter(ctx, "cpl", l.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	assert.True(t, archived.IsSealed)
	assert.Zero(t, archived.OpenedAt)
}

func TestLetterOpsMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.OpenLetter(ctx, "cpl", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.ArchiveLetter(ctx, "cpl", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJournalSortedNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Now()
	dates := []string{"2026-08-30", "2026-08-31", "2026-09-01"}
	for i, d := range dates {
		offset := time.Duration(i) * time.Hour
		s.SetNow(func() time.Time { return base.Add(offset) })
		_, err := s.CreateJournalEntry(ctx, "cpl", journal.CreateRequest{Content: "entry", Date: d})
		require.NoError(t, err)
	}

	entries, err := s.ListJournalEntries(ctx, "cpl")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Sorted by creation time, not by the user-chosen date.
	assert.Equal(t, "2026-09-01", entries[0].Date)
	assert.Equal(t, "2026-08-30", entries[2].Date)
}

func TestCoupleScoping(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateNote(ctx, "cpl1", note.CreateRequest{Content: "ours", AuthorName: "A"})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, "cpl2")
	require.NoError(t, err)
	assert.Empty(t, notes, "records must not leak across couples")
}
