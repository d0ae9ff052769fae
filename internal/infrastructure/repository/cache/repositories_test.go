package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	basecache "github.com/riskibarqy/squad-audit/internal/platform/cache"
)

type countingSnapshotStore struct {
	snapshots []squad.Snapshot
	getCalls  int
	listCalls int
}

func (s *countingSnapshotStore) Save(_ context.Context, snapshot squad.Snapshot) error {
	s.snapshots = append(s.snapshots, snapshot)
	return nil
}

func (s *countingSnapshotStore) GetByID(_ context.Context, id string) (squad.Snapshot, bool, error) {
	s.getCalls++
	for _, snapshot := range s.snapshots {
		if snapshot.ID == id {
			return snapshot, true, nil
		}
	}
	return squad.Snapshot{}, false, nil
}

func (s *countingSnapshotStore) List(_ context.Context, limit int) ([]squad.Snapshot, error) {
	s.listCalls++
	out := append([]squad.Snapshot(nil), s.snapshots...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type countingBaselineStore struct {
	collection  baseline.Collection
	hasLatest   bool
	latestCalls int
}

func (s *countingBaselineStore) Save(_ context.Context, collection baseline.Collection) error {
	s.collection = collection
	s.hasLatest = true
	return nil
}

func (s *countingBaselineStore) Latest(_ context.Context) (baseline.Collection, bool, error) {
	s.latestCalls++
	return s.collection, s.hasLatest, nil
}

func TestSnapshotRepositoryCachesReads(t *testing.T) {
	next := &countingSnapshotStore{snapshots: []squad.Snapshot{{ID: "snap-1", Name: "Demo FC"}}}
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, found, err := repo.GetByID(ctx, "snap-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Demo FC", first.Name)

	_, found, err = repo.GetByID(ctx, "snap-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, next.getCalls)

	_, err = repo.List(ctx, 10)
	require.NoError(t, err)
	_, err = repo.List(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 1, next.listCalls)
}

func TestSnapshotRepositorySaveInvalidates(t *testing.T) {
	next := &countingSnapshotStore{}
	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	_, found, err := repo.GetByID(ctx, "snap-1")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, repo.Save(ctx, squad.Snapshot{ID: "snap-1", Name: "Demo FC"}))

	got, found, err := repo.GetByID(ctx, "snap-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Demo FC", got.Name)
}

func TestBaselineRepositoryCachesLatest(t *testing.T) {
	next := &countingBaselineStore{collection: baseline.Collection{Version: "2026.1"}, hasLatest: true}
	repo := NewBaselineRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, found, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "2026.1", first.Version)

	_, _, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, next.latestCalls)
}

func TestBaselineRepositorySaveRefreshesLatest(t *testing.T) {
	next := &countingBaselineStore{collection: baseline.Collection{Version: "2026.1"}, hasLatest: true}
	repo := NewBaselineRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	_, _, err := repo.Latest(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, baseline.Collection{Version: "2026.2", GKWageMultiplier: 0.8}))

	got, found, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "2026.2", got.Version)
}
