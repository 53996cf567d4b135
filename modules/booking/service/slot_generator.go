package service

import (
	"sort"

	"go-booking-engine/modules/booking/entity"
	calentity "go-booking-engine/modules/calendar/entity"

	"github.com/google/uuid"
)

// HostFreeIntervals is one participant's computed free time for the window
type HostFreeIntervals struct {
	UserID        uuid.UUID
	FreeIntervals []calentity.Interval
}

// SlotGeneratorOptions bound the iteration range. Closest and Furthest are
// service-level offsets from now in ms, nil when unset.
type SlotGeneratorOptions struct {
	Window   entity.BookingWindow
	Interval int64
	Duration int64
	Closest  *int64
	Furthest *int64
	NowTS    int64
}

// SlotGenerator steps through a validated booking window and derives, per
// instant, the set of hosts free for the full requested duration.
type SlotGenerator struct{}

func NewSlotGenerator() *SlotGenerator {
	return &SlotGenerator{}
}

// Generate emits one slot per interval step with a non-empty eligible-host
// set. Output is strictly chronological and fully deterministic for fixed
// inputs.
func (g *SlotGenerator) Generate(hosts []HostFreeIntervals, opts SlotGeneratorOptions) []entity.Slot {
	// 1. Clamp the iteration range: never emit slots in the past, then apply
	// the service's booking-time bounds
	rangeStart := opts.Window.StartTS
	if opts.NowTS > rangeStart {
		rangeStart = opts.NowTS
	}
	if opts.Closest != nil {
		if earliest := opts.NowTS + *opts.Closest; earliest > rangeStart {
			rangeStart = earliest
		}
	}
	rangeEnd := opts.Window.EndTS
	if opts.Furthest != nil {
		if latest := opts.NowTS + *opts.Furthest; latest < rangeEnd {
			rangeEnd = latest
		}
	}
	if rangeStart >= rangeEnd {
		return nil
	}

	// Align the first step onto the window's interval grid
	if offset := (rangeStart - opts.Window.StartTS) % opts.Interval; offset != 0 {
		rangeStart += opts.Interval - offset
	}

	// 2. Step through the range and collect eligible hosts per instant
	var slots []entity.Slot
	for t := rangeStart; t < rangeEnd; t += opts.Interval {
		var eligible []uuid.UUID
		for _, host := range hosts {
			if hostIsFree(host.FreeIntervals, t, t+opts.Duration) {
				eligible = append(eligible, host.UserID)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		sortHosts(eligible)
		slots = append(slots, entity.Slot{Timestamp: t, EligibleHosts: eligible})
	}
	return slots
}

// hostIsFree reports whether some free interval fully contains [startTS, endTS)
func hostIsFree(free []calentity.Interval, startTS, endTS int64) bool {
	for _, iv := range free {
		if iv.Contains(startTS, endTS) {
			return true
		}
		if iv.StartTS > startTS {
			break
		}
	}
	return false
}

// sortHosts orders user ids lexicographically so the eligible set is stable
func sortHosts(hosts []uuid.UUID) {
	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].String() < hosts[j].String()
	})
}
