package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalContains(t *testing.T) {
	iv := Interval{StartTS: 100, EndTS: 200}

	assert.True(t, iv.Contains(100, 200))
	assert.True(t, iv.Contains(150, 180))
	assert.False(t, iv.Contains(50, 150))
	assert.False(t, iv.Contains(150, 250))
	assert.False(t, iv.Contains(200, 300))
}

func TestIntervalOverlaps(t *testing.T) {
	iv := Interval{StartTS: 100, EndTS: 200}

	assert.True(t, iv.Overlaps(Interval{StartTS: 150, EndTS: 250}))
	assert.True(t, iv.Overlaps(Interval{StartTS: 0, EndTS: 101}))
	// Touching intervals share no time under half-open semantics
	assert.False(t, iv.Overlaps(Interval{StartTS: 200, EndTS: 300}))
	assert.False(t, iv.Overlaps(Interval{StartTS: 0, EndTS: 100}))
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name     string
		input    []Interval
		expected []Interval
	}{
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "single interval",
			input:    []Interval{{10, 20}},
			expected: []Interval{{10, 20}},
		},
		{
			name:     "unsorted overlapping",
			input:    []Interval{{30, 50}, {10, 35}},
			expected: []Interval{{10, 50}},
		},
		{
			name:     "touching intervals coalesce",
			input:    []Interval{{10, 20}, {20, 30}},
			expected: []Interval{{10, 30}},
		},
		{
			name:     "disjoint stay separate",
			input:    []Interval{{10, 20}, {30, 40}},
			expected: []Interval{{10, 20}, {30, 40}},
		},
		{
			name:     "contained interval absorbed",
			input:    []Interval{{10, 100}, {20, 30}},
			expected: []Interval{{10, 100}},
		},
		{
			name:     "empty intervals dropped",
			input:    []Interval{{10, 10}, {20, 15}, {30, 40}},
			expected: []Interval{{30, 40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeIntervals(tt.input))
		})
	}
}

func TestSubtractIntervals(t *testing.T) {
	tests := []struct {
		name     string
		base     []Interval
		busy     []Interval
		expected []Interval
	}{
		{
			name:     "no busy returns base",
			base:     []Interval{{0, 100}},
			busy:     nil,
			expected: []Interval{{0, 100}},
		},
		{
			name:     "busy splits base",
			base:     []Interval{{0, 100}},
			busy:     []Interval{{40, 60}},
			expected: []Interval{{0, 40}, {60, 100}},
		},
		{
			name:     "busy covers base entirely",
			base:     []Interval{{20, 80}},
			busy:     []Interval{{0, 100}},
			expected: nil,
		},
		{
			name:     "busy clips edges",
			base:     []Interval{{0, 100}},
			busy:     []Interval{{0, 10}, {90, 110}},
			expected: []Interval{{10, 90}},
		},
		{
			name:     "multiple base intervals",
			base:     []Interval{{0, 50}, {60, 100}},
			busy:     []Interval{{40, 70}},
			expected: []Interval{{0, 40}, {70, 100}},
		},
		{
			name:     "unsorted inputs are normalized",
			base:     []Interval{{60, 100}, {0, 50}},
			busy:     []Interval{{80, 90}, {10, 20}},
			expected: []Interval{{0, 10}, {20, 50}, {60, 80}, {90, 100}},
		},
		{
			name:     "busy outside base has no effect",
			base:     []Interval{{50, 100}},
			busy:     []Interval{{0, 50}, {100, 200}},
			expected: []Interval{{50, 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubtractIntervals(tt.base, tt.busy))
		})
	}
}

func TestIntersectIntervals(t *testing.T) {
	tests := []struct {
		name     string
		a        []Interval
		b        []Interval
		expected []Interval
	}{
		{
			name:     "disjoint sets",
			a:        []Interval{{0, 10}},
			b:        []Interval{{20, 30}},
			expected: nil,
		},
		{
			name:     "partial overlap",
			a:        []Interval{{0, 50}},
			b:        []Interval{{30, 80}},
			expected: []Interval{{30, 50}},
		},
		{
			name:     "touching intervals produce nothing",
			a:        []Interval{{0, 50}},
			b:        []Interval{{50, 80}},
			expected: nil,
		},
		{
			name:     "multiple fragments",
			a:        []Interval{{0, 100}},
			b:        []Interval{{10, 20}, {30, 40}, {90, 120}},
			expected: []Interval{{10, 20}, {30, 40}, {90, 100}},
		},
		{
			name:     "identical sets",
			a:        []Interval{{5, 15}},
			b:        []Interval{{5, 15}},
			expected: []Interval{{5, 15}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntersectIntervals(tt.a, tt.b))
		})
	}
}
