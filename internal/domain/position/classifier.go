package position

import (
	"regexp"
	"strings"
)

// Segment is one band of a raw position string, e.g. "D/WB (RL)" parses
// into Bands ["D","WB"] with Sides "RL". A band without brackets carries
// empty Sides and is treated as central.
type Segment struct {
	Bands []string
	Sides string
}

var segmentPattern = regexp.MustCompile(`([A-Z/]+)\s*(?:\(([RLC]+)\))?`)

// ParseSegments splits a raw position string such as "DM, M (C)" or
// "AM (RL), ST (C)" into its band segments. Unparseable input yields nil.
func ParseSegments(raw string) []Segment {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}

	var segments []Segment
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		match := segmentPattern.FindStringSubmatch(part)
		if match == nil || match[1] == "" {
			continue
		}
		var bands []string
		for _, band := range strings.Split(match[1], "/") {
			if band != "" {
				bands = append(bands, band)
			}
		}
		if len(bands) == 0 {
			continue
		}
		segments = append(segments, Segment{Bands: bands, Sides: match[2]})
	}
	return segments
}

func (s Segment) central() bool {
	return s.Sides == "" || strings.Contains(s.Sides, "C")
}

func (s Segment) wide() bool {
	return strings.Contains(s.Sides, "R") || strings.Contains(s.Sides, "L")
}

// Candidates lists every category a raw position string can map to, in
// reading order and without duplicates.
func Candidates(raw string) []Category {
	var out []Category
	seen := make(map[Category]struct{})
	add := func(c Category) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, seg := range ParseSegments(raw) {
		for _, band := range seg.Bands {
			switch band {
			case "GK":
				add(CategoryGoalkeeper)
			case "D":
				if seg.central() {
					add(CategoryCentreBack)
				}
				if seg.wide() {
					add(CategoryFullBack)
				}
			case "WB":
				add(CategoryFullBack)
			case "DM":
				add(CategoryDefensiveMidfield)
			case "M":
				if seg.central() {
					add(CategoryCentralMidfield)
				}
				if seg.wide() {
					add(CategoryWinger)
				}
			case "AM":
				if seg.central() {
					add(CategoryAttackingMidfield)
				}
				if seg.wide() {
					add(CategoryWinger)
				}
			case "ST", "S", "F":
				add(CategoryStriker)
			}
		}
	}
	return out
}

// Classify resolves a player's position category from the raw position
// string, falling back to the in-match selected position and finally to a
// coarse first-letter guess. When the raw string spans several categories
// the one whose characteristic metrics the player actually produces wins.
func Classify(raw, selected string, stats map[string]float64) Category {
	candidates := Candidates(raw)
	if len(candidates) == 0 {
		candidates = Candidates(selected)
	}
	if len(candidates) == 0 {
		return fallbackCategory(raw)
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	best := candidates[0]
	bestFit := FitScore(best, stats)
	for _, c := range candidates[1:] {
		if fit := FitScore(c, stats); fit > bestFit {
			best, bestFit = c, fit
		}
	}
	return best
}

func fallbackCategory(raw string) Category {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(raw, "G"):
		return CategoryGoalkeeper
	case strings.HasPrefix(raw, "D"):
		return CategoryCentreBack
	case strings.HasPrefix(raw, "S"), strings.HasPrefix(raw, "F"):
		return CategoryStriker
	default:
		return CategoryCentralMidfield
	}
}
