package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses a statement to a single line and caps
// its length so span attributes stay readable for the big snapshot
// upserts, whose roster JSON can run to tens of kilobytes.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
