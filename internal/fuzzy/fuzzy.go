// Package fuzzy implements the multi-field weighted scorer (C2) and the
// single/combined query engine (C3) built on top of internal/bitap.
package fuzzy

import (
	"sort"

	"github.com/shinnku-nikaidou/shinnku-com/internal/bitap"
)

// Field names a weighted text field contributed by a record.
type Field struct {
	Name   string
	Weight float64
}

// Fields sets of weighted fields. searchindex.Item only carries one
// searchable text (its id), so the catalogue exposes a single unit-weight
// field — kept as a slice so a future record shape with more fields needs
// no change to the scorer itself.
var Fields = []Field{{Name: "id", Weight: 1.0}}

// Lookup resolves a field's searchable text for record at index idx. The
// catalogue's only field is the search id itself.
type Lookup func(idx int) (text string, ok bool)

// FieldResult is one field's contribution to a record's match.
type FieldResult struct {
	Field  string
	Score  float64
	Ranges []bitap.Range
}

// RecordResult is an aggregated, per-record match: the record's index in
// the original list, its mean score across contributing fields, and the
// per-field detail.
type RecordResult struct {
	Index  int
	Score  float64
	Fields []FieldResult
}

// scoreRecord runs the matcher across every configured field for one
// record and returns its aggregate, or ok=false if no field contributed.
func scoreRecord(m bitap.Matcher, pattern *bitap.Pattern, idx int, lookup Lookup) (RecordResult, bool) {
	var fields []FieldResult
	var total float64

	for _, f := range Fields {
		text, ok := lookup(idx)
		if !ok {
			continue
		}

		res, ok := m.Search(pattern, text)
		if !ok {
			continue
		}

		adjustedWeight := 1.0
		if f.Weight != 1.0 {
			adjustedWeight = 1.0 - f.Weight
		}

		score := res.Score * adjustedWeight
		if res.Score == 0 && adjustedWeight == 1.0 {
			score = 0.001
		}

		total += score
		fields = append(fields, FieldResult{Field: f.Name, Score: score, Ranges: res.Ranges})
	}

	if len(fields) == 0 {
		return RecordResult{}, false
	}

	return RecordResult{Index: idx, Score: total / float64(len(fields)), Fields: fields}, true
}

// SearchAll runs pattern against every record in [0, n), returning every
// contributing record sorted ascending by score. Ties are resolved
// unstably, matching spec.md §4.2.
func SearchAll(m bitap.Matcher, pattern *bitap.Pattern, n int, lookup Lookup) []RecordResult {
	var results []RecordResult
	for i := 0; i < n; i++ {
		if r, ok := scoreRecord(m, pattern, i, lookup); ok {
			results = append(results, r)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Score < results[j].Score })
	return results
}
