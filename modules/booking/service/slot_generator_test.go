package service

import (
	"testing"

	"go-booking-engine/modules/booking/entity"
	calentity "go-booking-engine/modules/calendar/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minute int64 = 1000 * 60

func mustWindow(t *testing.T, startTS, endTS int64) entity.BookingWindow {
	t.Helper()
	w, err := entity.NewBookingWindow(startTS, endTS)
	require.NoError(t, err)
	return w
}

func TestSlotGeneratorGenerate(t *testing.T) {
	g := NewSlotGenerator()
	hostA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	hostB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	t.Run("steps through the window at the interval", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 120 * minute}}},
		}
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
		})

		require.Len(t, slots, 4)
		for i, slot := range slots {
			assert.Equal(t, int64(i)*30*minute, slot.Timestamp)
			assert.Equal(t, []uuid.UUID{hostA}, slot.EligibleHosts)
		}
	})

	t.Run("host must be free for the full duration", func(t *testing.T) {
		// Free until minute 100 only; a 30-minute booking at minute 90 spills over
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 100 * minute}}},
		}
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
		})

		require.Len(t, slots, 3)
		assert.Equal(t, int64(60)*minute, slots[2].Timestamp)
	})

	t.Run("instants with no free host are omitted", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 30 * minute}}},
			{UserID: hostB, FreeIntervals: []calentity.Interval{{StartTS: 90 * minute, EndTS: 120 * minute}}},
		}
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
		})

		require.Len(t, slots, 2)
		assert.Equal(t, int64(0), slots[0].Timestamp)
		assert.Equal(t, []uuid.UUID{hostA}, slots[0].EligibleHosts)
		assert.Equal(t, int64(90)*minute, slots[1].Timestamp)
		assert.Equal(t, []uuid.UUID{hostB}, slots[1].EligibleHosts)
	})

	t.Run("eligible hosts are sorted lexicographically", func(t *testing.T) {
		free := []calentity.Interval{{StartTS: 0, EndTS: 60 * minute}}
		hosts := []HostFreeIntervals{
			{UserID: hostB, FreeIntervals: free},
			{UserID: hostA, FreeIntervals: free},
		}
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 60*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
		})

		require.NotEmpty(t, slots)
		assert.Equal(t, []uuid.UUID{hostA, hostB}, slots[0].EligibleHosts)
	})

	t.Run("closest booking time clamps the range start on the grid", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 120 * minute}}},
		}
		closest := 40 * minute
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
			Closest:  &closest,
			NowTS:    0,
		})

		// now + closest = minute 40, aligned up to the next grid step
		require.NotEmpty(t, slots)
		assert.Equal(t, int64(60)*minute, slots[0].Timestamp)
	})

	t.Run("furthest booking time clamps the range end", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 120 * minute}}},
		}
		furthest := 60 * minute
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
			Furthest: &furthest,
			NowTS:    0,
		})

		require.Len(t, slots, 2)
		assert.Equal(t, int64(30)*minute, slots[1].Timestamp)
	})

	t.Run("empty clamped range yields no slots", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 120 * minute}}},
		}
		closest := 200 * minute
		slots := g.Generate(hosts, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
			Closest:  &closest,
			NowTS:    0,
		})
		assert.Empty(t, slots)
	})

	t.Run("no hosts yields no slots", func(t *testing.T) {
		slots := g.Generate(nil, SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 30 * minute,
			Duration: 30 * minute,
		})
		assert.Empty(t, slots)
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		hosts := []HostFreeIntervals{
			{UserID: hostB, FreeIntervals: []calentity.Interval{{StartTS: 0, EndTS: 120 * minute}}},
			{UserID: hostA, FreeIntervals: []calentity.Interval{{StartTS: 15 * minute, EndTS: 90 * minute}}},
		}
		opts := SlotGeneratorOptions{
			Window:   mustWindow(t, 0, 120*minute),
			Interval: 15 * minute,
			Duration: 30 * minute,
		}

		first := g.Generate(hosts, opts)
		second := g.Generate(hosts, opts)
		assert.Equal(t, first, second)
	})
}
