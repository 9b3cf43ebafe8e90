package fuzzy

import (
	"sort"

	"github.com/shinnku-nikaidou/shinnku-com/internal/bitap"
	"github.com/shinnku-nikaidou/shinnku-com/internal/searchindex"
)

// DefaultMatcher is the engine's default configuration, per spec.md §4.3:
// threshold 0.6, distance 800, max pattern length 32, case-insensitive,
// tokenized.
func DefaultMatcher() bitap.Matcher {
	return bitap.Matcher{
		Location:         0,
		Distance:         800,
		Threshold:        0.6,
		MaxPatternLength: 32,
		IsCaseSensitive:  false,
		Tokenize:         true,
	}
}

func idLookup(items []searchindex.Item) Lookup {
	return func(idx int) (string, bool) {
		return items[idx].ID, true
	}
}

// Search runs a single-query fuzzy search over items using the engine's
// default matcher. limit <= 0 means "all results".
func Search(q string, items []searchindex.Item, limit int) []searchindex.Item {
	m := DefaultMatcher()
	pattern, ok := m.CompilePattern(q)
	if !ok {
		return nil
	}

	results := SearchAll(m, pattern, len(items), idLookup(items))

	out := make([]searchindex.Item, 0, len(results))
	for _, r := range results {
		out = append(out, items[r.Index])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CombinedSearch runs two independent single-query searches and merges
// their per-index scores: an index present in both tables gets the
// arithmetic mean of its two scores, an index present in only one table
// keeps that score unchanged. The merged set is sorted ascending by score
// (ties unstable) and truncated to n.
func CombinedSearch(q1, q2 string, n int, items []searchindex.Item) []searchindex.Item {
	m := DefaultMatcher()
	lookup := idLookup(items)

	scores := make(map[int]float64)

	if p1, ok := m.CompilePattern(q1); ok {
		for _, r := range SearchAll(m, p1, len(items), lookup) {
			scores[r.Index] = r.Score
		}
	}

	if p2, ok := m.CompilePattern(q2); ok {
		for _, r := range SearchAll(m, p2, len(items), lookup) {
			if existing, ok := scores[r.Index]; ok {
				scores[r.Index] = (existing + r.Score) / 2.0
			} else {
				scores[r.Index] = r.Score
			}
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	merged := make([]scored, 0, len(scores))
	for idx, sc := range scores {
		merged = append(merged, scored{idx, sc})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].score < merged[j].score })

	if n > 0 && len(merged) > n {
		merged = merged[:n]
	}

	out := make([]searchindex.Item, 0, len(merged))
	for _, s := range merged {
		out = append(out, items[s.idx])
	}
	return out
}
