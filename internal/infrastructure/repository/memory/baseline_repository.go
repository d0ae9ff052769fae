package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
)

type BaselineRepository struct {
	mu         sync.RWMutex
	collection baseline.Collection
	loaded     bool
}

func NewBaselineRepository() *BaselineRepository {
	return &BaselineRepository{}
}

// NewBaselineRepositoryWith seeds the repository with a collection,
// mostly for tests and local runs.
func NewBaselineRepositoryWith(collection baseline.Collection) *BaselineRepository {
	return &BaselineRepository{collection: collection, loaded: true}
}

func (r *BaselineRepository) Save(_ context.Context, collection baseline.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collection = collection
	r.loaded = true
	return nil
}

func (r *BaselineRepository) Latest(_ context.Context) (baseline.Collection, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collection, r.loaded, nil
}
