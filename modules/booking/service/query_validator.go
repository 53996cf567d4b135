package service

import (
	"fmt"
	"time"

	"go-booking-engine/core/errors"
	"go-booking-engine/modules/booking/dto"
	"go-booking-engine/modules/booking/entity"
)

const (
	// MinSlotInterval is the smallest accepted slot interval, 10 minutes in ms
	MinSlotInterval int64 = 1000 * 60 * 10
	// MaxSlotInterval is the largest accepted slot interval, 60 minutes in ms
	MaxSlotInterval int64 = 1000 * 60 * 60
)

// ValidatedQuery is the normalized result of a raw slot query: an absolute
// booking window plus the resolved location used for day grouping.
type ValidatedQuery struct {
	Window   entity.BookingWindow
	Location *time.Location
	Interval int64
	Duration int64
}

// ValidSlotsInterval reports whether the interval lies in [10min, 60min]
func ValidSlotsInterval(interval int64) bool {
	return interval >= MinSlotInterval && interval <= MaxSlotInterval
}

// ValidateSlotQuery normalizes a raw query into the full calendar day
// [00:00, 24:00) of the requested date in the resolved timezone.
func ValidateSlotQuery(q dto.SlotQuery) (*ValidatedQuery, *errors.AppError) {
	if !ValidSlotsInterval(q.Interval) {
		return nil, errors.NewAppError(errors.ErrInvalidInterval,
			"Invalid interval specified. It should be between 10 - 60 minutes inclusively and be specified as milliseconds.", nil)
	}
	if q.Duration <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be a positive number of milliseconds", nil)
	}

	tzName := q.Timezone
	if tzName == "" {
		tzName = "UTC"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTimezone,
			fmt.Sprintf("Invalid timezone: %s. It should be a valid IANA TimeZone.", tzName), err)
	}

	day, err := time.ParseInLocation("2006-1-2", q.Date, loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidDate,
			fmt.Sprintf("Invalid datetime: %s. Should be YYYY-MM-DD, e.g. January 1. 2020 => 2020-1-1", q.Date), err)
	}

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	// A calendar day always satisfies the 1h-40d invariant, but the window
	// constructor still checks it in case a timezone resolves degenerately.
	window, err := entity.NewBookingWindow(startOfDay.UnixMilli(), endOfDay.UnixMilli())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTimespan, err.Error(), err)
	}

	return &ValidatedQuery{
		Window:   window,
		Location: loc,
		Interval: q.Interval,
		Duration: q.Duration,
	}, nil
}
