package addresses

import "strings"

// Search returns catalogue entries matching the query, in catalogue order,
// capped by the clamped limit. Matching is a case-insensitive substring test
// against street, city, postcode, and the combined string. The empty query
// matches everything; the query is not trimmed, so whitespace is significant.
func Search(catalogue []Suggestion, query string, limit int, opts Options) []Suggestion {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	q := strings.ToLower(query)
	out := make([]Suggestion, 0, limit)
	for _, entry := range catalogue {
		if !matches(entry, q) {
			continue
		}
		out = append(out, entry)
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func matches(entry Suggestion, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(entry.Street), loweredQuery) ||
		strings.Contains(strings.ToLower(entry.City), loweredQuery) ||
		strings.Contains(strings.ToLower(entry.Postcode), loweredQuery) ||
		strings.Contains(strings.ToLower(entry.Combined), loweredQuery)
}
