package service

import (
	"context"
	"fmt"
	"testing"

	calentity "go-booking-engine/modules/calendar/entity"
	svcentity "go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo serves the selector and the free-busy collaborators in tests
type fakeEventRepo struct {
	upcomingCounts map[uuid.UUID]int
	busy           []calentity.Interval
	countErr       error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *calentity.Event) error { return nil }

func (f *fakeEventRepo) FindBusyIntervals(ctx context.Context, calendarIDs []uuid.UUID, fromTS, toTS int64) ([]calentity.Interval, error) {
	var out []calentity.Interval
	for _, b := range f.busy {
		if b.StartTS < toTS && b.EndTS > fromTS {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CountUpcomingServiceEvents(ctx context.Context, serviceID uuid.UUID, userIDs []uuid.UUID, fromTS int64) (map[uuid.UUID]int, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	counts := make(map[uuid.UUID]int, len(userIDs))
	for _, id := range userIDs {
		counts[id] = f.upcomingCounts[id]
	}
	return counts, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func orderedHosts(n int) []uuid.UUID {
	hosts := make([]uuid.UUID, n)
	for i := range hosts {
		hosts[i] = uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1))
	}
	return hosts
}

func TestRoundRobinSelectAvailability(t *testing.T) {
	hosts := orderedHosts(3)
	service := &svcentity.Service{ID: uuid.New(), Algorithm: svcentity.RoundRobinAvailability}
	selector := NewRoundRobinSelector(&fakeEventRepo{})

	t.Run("picks deterministically from the eligible set", func(t *testing.T) {
		shuffled := []uuid.UUID{hosts[2], hosts[0], hosts[1]}
		picked, err := selector.Select(context.Background(), service, shuffled, 0)
		require.NoError(t, err)
		assert.Equal(t, hosts[0], picked)
	})

	t.Run("always picks a member of the eligible set", func(t *testing.T) {
		eligible := []uuid.UUID{hosts[1], hosts[2]}
		picked, err := selector.Select(context.Background(), service, eligible, 0)
		require.NoError(t, err)
		assert.Contains(t, eligible, picked)
	})

	t.Run("empty eligible set is an error", func(t *testing.T) {
		_, err := selector.Select(context.Background(), service, nil, 0)
		assert.Error(t, err)
	})
}

func TestRoundRobinSelectEqualDistribution(t *testing.T) {
	hosts := orderedHosts(4)
	service := &svcentity.Service{ID: uuid.New(), Algorithm: svcentity.RoundRobinEqualDistribution}

	t.Run("picks the host with the fewest upcoming bookings", func(t *testing.T) {
		repo := &fakeEventRepo{upcomingCounts: map[uuid.UUID]int{
			hosts[0]: 3,
			hosts[1]: 0,
			hosts[2]: 1,
			hosts[3]: 5,
		}}
		picked, err := NewRoundRobinSelector(repo).Select(context.Background(), service, hosts, 0)
		require.NoError(t, err)
		assert.Equal(t, hosts[1], picked)
	})

	t.Run("ties break on the smallest user id", func(t *testing.T) {
		repo := &fakeEventRepo{upcomingCounts: map[uuid.UUID]int{
			hosts[0]: 2,
			hosts[1]: 1,
			hosts[2]: 1,
			hosts[3]: 4,
		}}
		// Pass the eligible set out of order to prove sorting decides the tie
		eligible := []uuid.UUID{hosts[3], hosts[2], hosts[1], hosts[0]}
		picked, err := NewRoundRobinSelector(repo).Select(context.Background(), service, eligible, 0)
		require.NoError(t, err)
		assert.Equal(t, hosts[1], picked)
	})

	t.Run("hosts without events count as zero", func(t *testing.T) {
		repo := &fakeEventRepo{upcomingCounts: map[uuid.UUID]int{
			hosts[0]: 1,
		}}
		picked, err := NewRoundRobinSelector(repo).Select(context.Background(), service, []uuid.UUID{hosts[0], hosts[2]}, 0)
		require.NoError(t, err)
		assert.Equal(t, hosts[2], picked)
	})

	t.Run("count failure surfaces as an error", func(t *testing.T) {
		repo := &fakeEventRepo{countErr: fmt.Errorf("db down")}
		_, err := NewRoundRobinSelector(repo).Select(context.Background(), service, hosts, 0)
		assert.Error(t, err)
	})
}
