package postgres

import (
	"time"

	"github.com/riskibarqy/squad-audit/internal/domain/baseline"
)

type baselineTableModel struct {
	ID        int64     `db:"id"`
	Version   string    `db:"version"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

type baselineInsertModel struct {
	Version string `db:"version"`
	Payload []byte `db:"payload"`
}

func baselineCollectionFromRow(row baselineTableModel) (baseline.Collection, error) {
	return baseline.FromJSON(row.Payload)
}
