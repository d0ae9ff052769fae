package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
	qb "github.com/riskibarqy/squad-audit/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot squad.Snapshot) error {
	roster, err := encodeRoster(snapshot.Players)
	if err != nil {
		return fmt.Errorf("encode snapshot roster: %w", err)
	}

	insertModel := snapshotInsertModel{
		PublicID:  snapshot.ID,
		Name:      snapshot.Name,
		Division:  snapshot.Division,
		Roster:    roster,
		CreatedAt: snapshot.CreatedAt,
	}

	query, args, err := qb.InsertModel("squad_snapshots", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    name = EXCLUDED.name,
    division = EXCLUDED.division,
    roster = EXCLUDED.roster`)
	if err != nil {
		return fmt.Errorf("build snapshot upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (squad.Snapshot, bool, error) {
	query, args, err := snapshotBaseSelectBuilder().
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("build get snapshot query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getByIDSingleParam(ctx, id)
		}
		if isNotFound(err) {
			return squad.Snapshot{}, false, nil
		}
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	snapshot, err := snapshotFromRow(row)
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}
	return snapshot, true, nil
}

func (r *SnapshotRepository) getByIDSingleParam(ctx context.Context, id string) (squad.Snapshot, bool, error) {
	query, _, err := snapshotBaseSelectBuilder().
		Where(qb.Expr("public_id = ($1::text[])[1]")).
		ToSQL()
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("build get snapshot single param fallback query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, pq.Array([]string{id})); err != nil {
		if isUnnamedPreparedStatementMissing(err) {
			return r.getByIDLiteral(ctx, id)
		}
		if isNotFound(err) {
			return squad.Snapshot{}, false, nil
		}
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot fallback: %w", err)
	}

	snapshot, err := snapshotFromRow(row)
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot fallback: %w", err)
	}
	return snapshot, true, nil
}

func (r *SnapshotRepository) getByIDLiteral(ctx context.Context, id string) (squad.Snapshot, bool, error) {
	query, args, err := snapshotBaseSelectBuilder().
		Where(qb.EqLiteral("public_id", id)).
		ToSQL()
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("build get snapshot literal fallback query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return squad.Snapshot{}, false, nil
		}
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot literal fallback: %w", err)
	}

	snapshot, err := snapshotFromRow(row)
	if err != nil {
		return squad.Snapshot{}, false, fmt.Errorf("get snapshot literal fallback: %w", err)
	}
	return snapshot, true, nil
}

func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]squad.Snapshot, error) {
	builder := snapshotBaseSelectBuilder().
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots query: %w", err)
	}

	var rows []snapshotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]squad.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshot, err := snapshotFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		out = append(out, snapshot)
	}
	return out, nil
}

func snapshotBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("squad_snapshots")
}
