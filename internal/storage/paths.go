package storage

import "fmt"

// Document store path layout. Collection paths address the per-couple record
// set; record paths address a single record within it.
//
//	couples/{key}
//	notes/{coupleId}/{noteId}
//	moods/{coupleId}/{authorName}
//	letters/{coupleId}/{letterId}
//	journal/{coupleId}/{entryId}

// CouplePath addresses a couple record by its key.
func CouplePath(key string) string { return fmt.Sprintf("couples/%s", key) }

// NotesPath addresses a couple's note collection.
func NotesPath(coupleID string) string { return fmt.Sprintf("notes/%s", coupleID) }

// MoodsPath addresses a couple's mood collection.
func MoodsPath(coupleID string) string { return fmt.Sprintf("moods/%s", coupleID) }

// LettersPath addresses a couple's letter collection.
func LettersPath(coupleID string) string { return fmt.Sprintf("letters/%s", coupleID) }

// JournalPath addresses a couple's journal collection.
func JournalPath(coupleID string) string { return fmt.Sprintf("journal/%s", coupleID) }
