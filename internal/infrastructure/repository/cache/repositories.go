package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	basecache "github.com/riskibarqy/squad-audit/internal/platform/cache"
)

// SnapshotRepository is a read-through cache in front of a snapshot store.
// Writes invalidate every snapshot key so listings never serve stale rows.
type SnapshotRepository struct {
	next  squad.SnapshotRepository
	cache *basecache.Store
}

func NewSnapshotRepository(next squad.SnapshotRepository, cache *basecache.Store) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot squad.Snapshot) error {
	if err := r.next.Save(ctx, snapshot); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "snapshot:")
	return nil
}

func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (squad.Snapshot, bool, error) {
	key := "snapshot:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedSnapshotByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return squad.Snapshot{}, false, err
	}

	cached, _ := v.(cachedSnapshotByID)
	return cached.value, cached.exists, nil
}

func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]squad.Snapshot, error) {
	key := "snapshot:list:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]squad.Snapshot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]squad.Snapshot)
	return append([]squad.Snapshot(nil), items...), nil
}

type cachedSnapshotByID struct {
	value  squad.Snapshot
	exists bool
}

// BaselineRepository caches the latest baseline collection. Uploads are
// rare and reads sit on the hot analysis path.
type BaselineRepository struct {
	next  baseline.Repository
	cache *basecache.Store
}

func NewBaselineRepository(next baseline.Repository, cache *basecache.Store) *BaselineRepository {
	return &BaselineRepository{next: next, cache: cache}
}

func (r *BaselineRepository) Save(ctx context.Context, collection baseline.Collection) error {
	if err := r.next.Save(ctx, collection); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "baseline:")
	return nil
}

func (r *BaselineRepository) Latest(ctx context.Context) (baseline.Collection, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "baseline:latest", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Latest(ctx)
		if err != nil {
			return nil, err
		}
		return cachedBaselineLatest{value: item, exists: exists}, nil
	})
	if err != nil {
		return baseline.Collection{}, false, err
	}

	cached, _ := v.(cachedBaselineLatest)
	return cached.value, cached.exists, nil
}

type cachedBaselineLatest struct {
	value  baseline.Collection
	exists bool
}
