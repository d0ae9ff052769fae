package squad

import (
	"fmt"
	"strings"
	"time"
)

// StatusFlag carries the scouting flags attached to a player in the raw
// export, e.g. listed for transfer or eligible for the under-21 side.
type StatusFlag struct {
	Injured        bool
	TransferListed bool
	Under21        bool
	PreContract    bool
	Unreliable     bool
	Suspended      bool
	Departed       bool
}

// ParseStatusFlag reads the free-text status column. Flags are
// comma-separated tokens such as "Wnt" and "U21"; unknown tokens are
// ignored.
func ParseStatusFlag(raw string) StatusFlag {
	var flag StatusFlag
	for _, token := range strings.Split(raw, ",") {
		switch strings.ToUpper(strings.TrimSpace(token)) {
		case "INJ":
			flag.Injured = true
		case "WNT":
			flag.TransferListed = true
		case "U21":
			flag.Under21 = true
		case "PR":
			flag.PreContract = true
		case "UNR":
			flag.Unreliable = true
		case "YEL":
			flag.Suspended = true
		case "LST":
			flag.Departed = true
		}
	}
	return flag
}

// String renders the flag back into the export's token form.
func (f StatusFlag) String() string {
	var tokens []string
	if f.Injured {
		tokens = append(tokens, "Inj")
	}
	if f.TransferListed {
		tokens = append(tokens, "Wnt")
	}
	if f.Under21 {
		tokens = append(tokens, "U21")
	}
	if f.PreContract {
		tokens = append(tokens, "PR")
	}
	if f.Unreliable {
		tokens = append(tokens, "Unr")
	}
	if f.Suspended {
		tokens = append(tokens, "Yel")
	}
	if f.Departed {
		tokens = append(tokens, "Lst")
	}
	return strings.Join(tokens, ", ")
}

// Player is one roster entry of an imported squad. Stats holds the
// normalized per-90 metrics keyed by metric name; an absent key means the
// export did not carry that metric for this player.
type Player struct {
	ID               string
	Name             string
	Age              int
	Position         string
	PositionSelected string
	Wage             float64
	Apps             int
	Subs             int
	Minutes          *int
	Status           StatusFlag
	ContractExpires  string
	Stats            map[string]float64
}

func (p Player) ValidateBasic() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age must not be negative")
	}
	if p.Wage < 0 {
		return fmt.Errorf("player wage must not be negative")
	}
	if p.Minutes != nil && *p.Minutes < 0 {
		return fmt.Errorf("player minutes must not be negative")
	}
	return nil
}

// Metric returns the named stat and whether the export carried it.
func (p Player) Metric(name string) (float64, bool) {
	v, ok := p.Stats[name]
	return v, ok
}

// Appearances counts starts plus substitute appearances.
func (p Player) Appearances() int {
	return p.Apps + p.Subs
}

// ContractExpiry parses the DD/MM/YYYY expiry column. A dash or empty
// string means no recorded contract and reports ok=false.
func (p Player) ContractExpiry() (time.Time, bool) {
	raw := strings.TrimSpace(p.ContractExpires)
	if raw == "" || raw == "-" {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Squad is a full imported roster together with its division context.
type Squad struct {
	Name     string
	Division string
	Players  []Player
}

func (s Squad) ValidateBasic() error {
	if len(s.Players) == 0 {
		return fmt.Errorf("squad players are required")
	}
	for i, p := range s.Players {
		if err := p.ValidateBasic(); err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
	}
	return nil
}

// AverageWage is the mean wage over players with a positive wage. It
// returns zero when nobody earns anything, which callers treat as an
// unusable denominator.
func (s Squad) AverageWage() float64 {
	var sum float64
	var n int
	for _, p := range s.Players {
		if p.Wage > 0 {
			sum += p.Wage
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
