package oreum

import (
	"context"
	"time"
)

// JournalEntry is one mood journal record with the mentor's reply.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}

// JournalStore persists journal entries.
type JournalStore interface {
	// Create stores e and returns it with ID set.
	Create(ctx context.Context, e JournalEntry) (JournalEntry, error)

	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]JournalEntry, error)
}
