package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingWindow(t *testing.T) {
	t.Run("exactly one hour is accepted", func(t *testing.T) {
		w, err := NewBookingWindow(0, MinWindowSpan)
		require.NoError(t, err)
		assert.Equal(t, int64(0), w.StartTS)
		assert.Equal(t, MinWindowSpan, w.EndTS)
	})

	t.Run("exactly forty days is accepted", func(t *testing.T) {
		_, err := NewBookingWindow(1000, 1000+MaxWindowSpan)
		assert.NoError(t, err)
	})

	t.Run("below one hour is rejected", func(t *testing.T) {
		_, err := NewBookingWindow(0, MinWindowSpan-1)
		assert.Error(t, err)
	})

	t.Run("above forty days is rejected", func(t *testing.T) {
		_, err := NewBookingWindow(0, MaxWindowSpan+1)
		assert.Error(t, err)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		_, err := NewBookingWindow(5000, 1000)
		assert.Error(t, err)
	})
}

func TestBookingWindowInterval(t *testing.T) {
	w, err := NewBookingWindow(0, MinWindowSpan)
	require.NoError(t, err)

	iv := w.Interval()
	assert.Equal(t, w.StartTS, iv.StartTS)
	assert.Equal(t, w.EndTS, iv.EndTS)
}
