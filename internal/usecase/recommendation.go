package usecase

import (
	"fmt"
	"time"

	"github.com/riskibarqy/squad-audit/internal/domain/role"
	"github.com/riskibarqy/squad-audit/internal/domain/squad"
)

// Badge colors follow the report palette.
const (
	colorSuccess   = "success"
	colorInfo      = "info"
	colorWarning   = "warning"
	colorDanger    = "danger"
	colorSecondary = "secondary"
)

const (
	lowValueCutoff      = 50
	fewAppearancesLimit = 10
	contractWarnWindow  = 6 * 30 * 24 * time.Hour
)

// recommendationInput is what the rule predicates get to look at.
type recommendationInput struct {
	player       squad.Player
	verdict      role.Tier
	value        float64
	minutes      int
	minutesKnown bool
}

type recommendationRule struct {
	match func(in recommendationInput) bool
	build func(in recommendationInput) Recommendation
}

// recommendationRules is walked top to bottom; the first matching rule
// wins. Sample-size rules outrank value rules, which outrank performance
// rules, and the final entry always matches.
var recommendationRules = []recommendationRule{
	{
		match: func(in recommendationInput) bool {
			return in.minutesKnown && in.minutes < minMinutesForAnalysis
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{
				Badge:       "LOW DATA",
				Color:       colorSecondary,
				Explanation: fmt.Sprintf("Insufficient data (%d mins played)", in.minutes),
			}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.minutesKnown && in.minutes < minMinutesForFullTrust
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "LOW DATA", Color: colorSecondary, Explanation: "Projected stats only"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.value < lowValueCutoff && in.verdict == role.TierElite
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "WAGE CUT", Color: colorWarning, Explanation: "Elite output but wages far above squad level"}
		},
	},
	{
		match: func(in recommendationInput) bool { return in.value < lowValueCutoff },
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "CONSIDER SALE", Color: colorDanger, Explanation: "Poor return on wages"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierElite && in.player.Status.TransferListed
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "KEEP & PLAY", Color: colorSuccess, Explanation: "Elite metrics suggest cancelling the listing"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierElite && in.player.Status.Under21
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "PROMOTE", Color: colorInfo, Explanation: "Elite youth, ready for the first team"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierElite && in.player.Status.PreContract
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "USE NOW", Color: colorWarning, Explanation: "Elite performer already leaving on a pre-contract"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierElite && in.player.Status.Unreliable
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "MAN MANAGE", Color: colorWarning, Explanation: "Elite metrics despite flagged unreliability"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierElite && in.player.Appearances() < fewAppearancesLimit
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "INCREASE MINS", Color: colorInfo, Explanation: "Elite output from limited appearances"}
		},
	},
	{
		match: func(in recommendationInput) bool { return in.verdict == role.TierElite },
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "CORE STARTER", Color: colorSuccess, Explanation: "Elite performer"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierGood && in.player.Status.TransferListed
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "EVALUATE", Color: colorWarning, Explanation: "Good performer currently listed"}
		},
	},
	{
		match: func(in recommendationInput) bool { return in.verdict == role.TierGood },
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "BACKUP", Color: colorSecondary, Explanation: "Solid squad option"}
		},
	},
	{
		match: func(in recommendationInput) bool {
			return in.verdict == role.TierPoor && in.player.Status.Under21
		},
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "DEVELOP", Color: colorWarning, Explanation: "Underperforming youth, needs loans or training"}
		},
	},
	{
		match: func(in recommendationInput) bool { return in.verdict == role.TierPoor },
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "SELL/REPLACE", Color: colorDanger, Explanation: "Below squad standard"}
		},
	},
	{
		match: func(in recommendationInput) bool { return true },
		build: func(in recommendationInput) Recommendation {
			return Recommendation{Badge: "BACKUP", Color: colorSecondary, Explanation: "Average performance"}
		},
	},
}

// recommendFor walks the rule table and attaches the orthogonal contract
// warning.
func recommendFor(p squad.Player, verdict role.Tier, value float64, now time.Time) Recommendation {
	minutes, known := sampleMinutes(p)
	in := recommendationInput{
		player:       p,
		verdict:      verdict,
		value:        value,
		minutes:      minutes,
		minutesKnown: known,
	}
	var rec Recommendation
	for _, rule := range recommendationRules {
		if rule.match(in) {
			rec = rule.build(in)
			break
		}
	}
	rec.ContractWarning = contractWarning(p, verdict, now)
	return rec
}

// contractWarning flags elite and good players whose contract runs out
// within six months. Losing anyone else on a free is not a problem worth
// surfacing.
func contractWarning(p squad.Player, verdict role.Tier, now time.Time) string {
	if verdict != role.TierElite && verdict != role.TierGood {
		return ""
	}
	expiry, ok := p.ContractExpiry()
	if !ok {
		return ""
	}
	if expiry.Before(now) || expiry.Sub(now) <= contractWarnWindow {
		return fmt.Sprintf("Contract expires %s", expiry.Format("02/01/2006"))
	}
	return ""
}
