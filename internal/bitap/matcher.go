package bitap

import "strings"

// Range is a half-open byte interval [Start, End) over a searched text.
type Range struct {
	Start int
	End   int
}

// Result is the outcome of a single Search call.
type Result struct {
	Score  float64
	Ranges []Range
}

// Matcher holds the configuration for repeated approximate matches: the
// preferred location, the distance decay, the acceptance threshold, the
// pattern length cap, and the case/tokenize behavior. None of this is
// per-call state — a Matcher is safe to reuse (and to share) across many
// Search calls.
type Matcher struct {
	Location         int
	Distance         int
	Threshold        float64
	MaxPatternLength int
	IsCaseSensitive  bool
	Tokenize         bool
}

// CompilePattern compiles s using the matcher's case-sensitivity and
// max-pattern-length settings.
func (m Matcher) CompilePattern(s string) (*Pattern, bool) {
	return CompilePattern(s, m.MaxPatternLength, m.IsCaseSensitive)
}

// Search runs the matcher's configured algorithm against text. Returns
// (Result{}, false) when pattern is nil or the resulting score is
// effectively 1.0 (no useful match).
func (m Matcher) Search(pattern *Pattern, text string) (Result, bool) {
	if pattern == nil {
		return Result{}, false
	}

	if !m.Tokenize {
		res := m.searchUtil(pattern, text)
		if res.Score >= 1.0-epsilon {
			return Result{}, false
		}
		return res, true
	}

	full := m.searchUtil(pattern, text)
	total := full.Score
	ranges := append([]Range(nil), full.Ranges...)
	count := 0

	for _, word := range strings.Fields(pattern.Text) {
		wordPattern, ok := m.CompilePattern(word)
		if !ok {
			continue
		}
		r := m.searchUtil(wordPattern, text)
		total += r.Score
		ranges = append(ranges, r.Ranges...)
		count++
	}

	avg := total / float64(count+1)
	if avg >= 1.0-epsilon {
		return Result{}, false
	}
	return Result{Score: avg, Ranges: ranges}, true
}

const epsilon = 2.220446049250313e-16 // float64 machine epsilon, matches f64::EPSILON

// searchUtil is the bitap core described in spec.md §4.1: exact-match fast
// path, literal pre-scan, then the bitap binary-search/bit-vector loop.
func (m Matcher) searchUtil(pattern *Pattern, text string) Result {
	searched := text
	if !m.IsCaseSensitive {
		searched = asciiLower(text)
	}
	textLen := len(searched)

	if searched == pattern.Text {
		return Result{Score: 0, Ranges: []Range{{Start: 0, End: textLen}}}
	}

	loc := m.Location
	distance := m.Distance
	threshold := m.Threshold
	patLen := pattern.Len

	mask := make([]byte, textLen)

	// Pre-scan: every non-overlapping literal occurrence lowers the
	// threshold and marks its byte range as matched.
	pos := 0
	for pos <= textLen {
		idx, ok := safeFindAtOrAfter(searched, pos, pattern.Text)
		if !ok {
			break
		}
		sc := Score(patLen, 0, idx, loc, distance)
		if sc < threshold {
			threshold = sc
		}
		for k := idx; k < idx+patLen && k < textLen; k++ {
			mask[k] = 1
		}
		pos = idx + patLen
	}

	score := 1.0
	binMax := patLen + textLen
	var lastRow []uint64

	for i := 0; i < patLen; i++ {
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if Score(patLen, i, loc, loc+binMid, distance) <= threshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = ((binMax-binMin)/2 + binMin)
		}
		binMax = binMid

		start := maxInt(1, loc-binMid+1)
		finish := minInt(textLen, loc+binMid) + patLen

		if start > finish {
			continue
		}

		row := make([]uint64, finish+2)
		if i < 64 {
			row[finish+1] = (uint64(1) << uint(i)) - 1
		} else {
			row[finish+1] = ^uint64(0)
		}

		for j := finish; j >= start; j-- {
			idx0 := j - 1
			var c uint64
			if idx0 < textLen {
				c = pattern.Alphabet[searched[idx0]]
			}

			if c != 0 && idx0 < len(mask) {
				mask[idx0] = 1
			}

			row[j] = ((row[j+1] << 1) | 1) & c
			if i > 0 && lastRow != nil {
				row[j] |= (((lastRow[j+1] | lastRow[j]) << 1) | 1) | lastRow[j+1]
			}

			if row[j]&pattern.HighBitMask != 0 {
				candidate := Score(patLen, i, idx0, loc, distance)
				if candidate <= threshold {
					threshold = candidate
					score = candidate
					if idx0 <= loc {
						break
					}
				}
			}
		}

		if Score(patLen, i+1, loc, loc, distance) > threshold {
			break
		}
		lastRow = row
	}

	return Result{Score: score, Ranges: findRanges(mask)}
}

// safeFindAtOrAfter finds the first occurrence of pat in text at or after
// byte offset start, snapping start up to the next UTF-8 character
// boundary first. Returns the absolute byte offset of the match.
func safeFindAtOrAfter(text string, start int, pat string) (int, bool) {
	if start >= len(text) {
		return 0, false
	}
	boundary := start
	for boundary < len(text) && !isUTF8Boundary(text, boundary) {
		boundary++
	}
	if boundary >= len(text) {
		return 0, false
	}
	rel := strings.Index(text[boundary:], pat)
	if rel < 0 {
		return 0, false
	}
	return boundary + rel, true
}

func isUTF8Boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	// A byte is a continuation byte iff its top two bits are 10.
	return s[i]&0xC0 != 0x80
}

// findRanges scans a 0/1 mask and returns maximal half-open intervals over
// consecutive set bytes.
func findRanges(mask []byte) []Range {
	var ranges []Range
	start := -1
	for i, v := range mask {
		if v != 0 {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			ranges = append(ranges, Range{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		ranges = append(ranges, Range{Start: start, End: len(mask)})
	}
	return ranges
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
