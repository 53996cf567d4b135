package entity

import (
	"fmt"

	calentity "go-booking-engine/modules/calendar/entity"
)

const (
	// MinWindowSpan is the smallest accepted booking window, 1 hour in ms
	MinWindowSpan int64 = 1000 * 60 * 60
	// MaxWindowSpan is the largest accepted booking window, 40 days in ms
	MaxWindowSpan int64 = 1000 * 60 * 60 * 24 * 40
)

// BookingWindow is the absolute [StartTS, EndTS) range a slot query covers,
// in epoch milliseconds. Created once per query, never mutated.
type BookingWindow struct {
	StartTS int64
	EndTS   int64
}

// NewBookingWindow validates the timespan invariant: the window must span
// between 1 hour and 40 days.
func NewBookingWindow(startTS, endTS int64) (BookingWindow, error) {
	delta := endTS - startTS
	if delta < MinWindowSpan || delta > MaxWindowSpan {
		return BookingWindow{}, fmt.Errorf(
			"provided timespan start_ts: %d and end_ts: %d is invalid, it should be between 1 hour and 40 days",
			startTS, endTS)
	}
	return BookingWindow{StartTS: startTS, EndTS: endTS}, nil
}

// Interval returns the window as a calendar interval
func (w BookingWindow) Interval() calentity.Interval {
	return calentity.Interval{StartTS: w.StartTS, EndTS: w.EndTS}
}
