package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

type snapshotTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Division  string    `db:"division"`
	Roster    []byte    `db:"roster"`
	CreatedAt time.Time `db:"created_at"`
}

type snapshotInsertModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Division  string    `db:"division"`
	Roster    []byte    `db:"roster"`
	CreatedAt time.Time `db:"created_at"`
}

// rosterPlayerModel is the jsonb shape of one player inside the roster
// column. The domain structs carry no serialization tags, so the storage
// representation lives here.
type rosterPlayerModel struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Age              int                `json:"age"`
	Position         string             `json:"position"`
	PositionSelected string             `json:"position_selected,omitempty"`
	Wage             float64            `json:"wage"`
	Apps             int                `json:"apps"`
	Subs             int                `json:"subs"`
	Minutes          *int               `json:"minutes,omitempty"`
	Status           string             `json:"status,omitempty"`
	ContractExpires  string             `json:"contract_expires,omitempty"`
	Stats            map[string]float64 `json:"stats,omitempty"`
}

func encodeRoster(players []squad.Player) ([]byte, error) {
	rows := make([]rosterPlayerModel, 0, len(players))
	for _, p := range players {
		rows = append(rows, rosterPlayerModel{
			ID:               p.ID,
			Name:             p.Name,
			Age:              p.Age,
			Position:         p.Position,
			PositionSelected: p.PositionSelected,
			Wage:             p.Wage,
			Apps:             p.Apps,
			Subs:             p.Subs,
			Minutes:          p.Minutes,
			Status:           p.Status.String(),
			ContractExpires:  p.ContractExpires,
			Stats:            p.Stats,
		})
	}

	raw, err := sonic.Marshal(rows)
	if err != nil {
		return nil, errors.Wrap(err, "encode roster")
	}
	return raw, nil
}

func decodeRoster(raw []byte) ([]squad.Player, error) {
	var rows []rosterPlayerModel
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrap(err, "decode roster")
	}

	players := make([]squad.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, squad.Player{
			ID:               row.ID,
			Name:             row.Name,
			Age:              row.Age,
			Position:         row.Position,
			PositionSelected: row.PositionSelected,
			Wage:             row.Wage,
			Apps:             row.Apps,
			Subs:             row.Subs,
			Minutes:          row.Minutes,
			Status:           squad.ParseStatusFlag(row.Status),
			ContractExpires:  row.ContractExpires,
			Stats:            row.Stats,
		})
	}
	return players, nil
}

func snapshotFromRow(row snapshotTableModel) (squad.Snapshot, error) {
	players, err := decodeRoster(row.Roster)
	if err != nil {
		return squad.Snapshot{}, err
	}
	return squad.Snapshot{
		ID:        row.PublicID,
		Name:      row.Name,
		Division:  row.Division,
		Players:   players,
		CreatedAt: row.CreatedAt,
	}, nil
}
