package ports

import (
	"context"
	"time"
)

// Journal operations recorded for dual-store writes.
const (
	JournalOpCreate   = "create"
	JournalOpDelete   = "delete"
	JournalOpPassword = "password"
)

// DualWriteJournal records in-flight dual-store operations so a
// reconciliation pass can clean up after a failed compensation. Entries are
// written before the first store is touched and cleared once both stores
// agree.
type DualWriteJournal interface {
	Begin(ctx context.Context, op, accountID string) error
	Clear(ctx context.Context, op, accountID string) error
	// Pending returns the account ids of entries for op begun before cutoff.
	Pending(ctx context.Context, op string, cutoff time.Time) ([]string, error)
}
