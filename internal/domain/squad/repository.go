package squad

import (
	"context"
	"time"
)

// Snapshot is a persisted import of a squad, kept so analyses can be
// re-run against the same roster later.
type Snapshot struct {
	ID        string
	Name      string
	Division  string
	Players   []Player
	CreatedAt time.Time
}

// SnapshotRepository describes squad snapshot persistence needs from use cases.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot Snapshot) error
	GetByID(ctx context.Context, id string) (Snapshot, bool, error)
	List(ctx context.Context, limit int) ([]Snapshot, error)
}
