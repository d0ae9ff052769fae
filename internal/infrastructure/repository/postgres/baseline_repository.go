package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
	qb "github.com/riskibarqy/squad-audit/internal/platform/querybuilder"
)

type BaselineRepository struct {
	db *sqlx.DB
}

func NewBaselineRepository(db *sqlx.DB) *BaselineRepository {
	return &BaselineRepository{db: db}
}

func (r *BaselineRepository) Save(ctx context.Context, collection baseline.Collection) error {
	payload, err := baseline.ToJSON(collection)
	if err != nil {
		return fmt.Errorf("encode baseline collection: %w", err)
	}

	insertModel := baselineInsertModel{
		Version: collection.Version,
		Payload: payload,
	}

	query, args, err := qb.InsertModel("league_baselines", insertModel, `ON CONFLICT (version)
DO UPDATE SET
    payload = EXCLUDED.payload,
    created_at = now()`)
	if err != nil {
		return fmt.Errorf("build baseline upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert baseline collection: %w", err)
	}
	return nil
}

func (r *BaselineRepository) Latest(ctx context.Context) (baseline.Collection, bool, error) {
	query, args, err := qb.Select("*").
		From("league_baselines").
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return baseline.Collection{}, false, fmt.Errorf("build latest baseline query: %w", err)
	}

	var row baselineTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return baseline.Collection{}, false, nil
		}
		return baseline.Collection{}, false, fmt.Errorf("get latest baseline: %w", err)
	}

	collection, err := baselineCollectionFromRow(row)
	if err != nil {
		return baseline.Collection{}, false, fmt.Errorf("get latest baseline: %w", err)
	}
	return collection, true, nil
}
