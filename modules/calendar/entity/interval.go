package entity

import "sort"

// Interval is a half-open time range [StartTS, EndTS) in epoch milliseconds.
// It is used both for busy periods and free periods.
type Interval struct {
	StartTS int64 `json:"start_ts"`
	EndTS   int64 `json:"end_ts"`
}

// Valid reports whether the interval is non-empty
func (i Interval) Valid() bool {
	return i.StartTS < i.EndTS
}

// Contains reports whether [startTS, endTS) lies fully inside the interval
func (i Interval) Contains(startTS, endTS int64) bool {
	return i.StartTS <= startTS && endTS <= i.EndTS
}

// Overlaps reports whether the two intervals share any time. Touching
// intervals (end == start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartTS < other.EndTS && other.StartTS < i.EndTS
}

// MergeIntervals returns a sorted, non-overlapping set covering the same
// time as the input. Touching intervals are coalesced.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Valid() {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTS < sorted[j].StartTS
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.StartTS <= last.EndTS {
			if cur.EndTS > last.EndTS {
				last.EndTS = cur.EndTS
			}
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

// SubtractIntervals removes the busy set from the base set. Both inputs may
// be unsorted; the result is normalized.
func SubtractIntervals(base, busy []Interval) []Interval {
	base = MergeIntervals(base)
	busy = MergeIntervals(busy)

	var out []Interval
	for _, b := range base {
		cursor := b.StartTS
		for _, u := range busy {
			if u.EndTS <= cursor || u.StartTS >= b.EndTS {
				continue
			}
			if u.StartTS > cursor {
				out = append(out, Interval{StartTS: cursor, EndTS: u.StartTS})
			}
			if u.EndTS > cursor {
				cursor = u.EndTS
			}
			if cursor >= b.EndTS {
				break
			}
		}
		if cursor < b.EndTS {
			out = append(out, Interval{StartTS: cursor, EndTS: b.EndTS})
		}
	}
	return out
}

// IntersectIntervals returns the time covered by both sets
func IntersectIntervals(a, b []Interval) []Interval {
	a = MergeIntervals(a)
	b = MergeIntervals(b)

	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := max64(a[i].StartTS, b[j].StartTS)
		end := min64(a[i].EndTS, b[j].EndTS)
		if start < end {
			out = append(out, Interval{StartTS: start, EndTS: end})
		}
		if a[i].EndTS < b[j].EndTS {
			i++
		} else {
			j++
		}
	}
	return out
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
