package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

type SnapshotRepository struct {
	mu    sync.RWMutex
	items map[string]squad.Snapshot
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{items: make(map[string]squad.Snapshot)}
}

func (r *SnapshotRepository) Save(_ context.Context, snapshot squad.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[snapshot.ID] = snapshot
	return nil
}

func (r *SnapshotRepository) GetByID(_ context.Context, id string) (squad.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.items[id]
	return snapshot, ok, nil
}

func (r *SnapshotRepository) List(_ context.Context, limit int) ([]squad.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]squad.Snapshot, 0, len(r.items))
	for _, snapshot := range r.items {
		out = append(out, snapshot)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
