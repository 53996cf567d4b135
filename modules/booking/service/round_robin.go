package service

import (
	"context"
	"fmt"

	calrepo "go-booking-engine/modules/calendar/repository"
	svcentity "go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
)

// RoundRobinSelector picks exactly one host from a slot's eligible set
// according to the service's fairness policy.
type RoundRobinSelector struct {
	eventRepo calrepo.EventRepositoryInterface
}

func NewRoundRobinSelector(eventRepo calrepo.EventRepositoryInterface) *RoundRobinSelector {
	return &RoundRobinSelector{eventRepo: eventRepo}
}

// Select returns one host user id from eligible. The eligible set must be
// non-empty; callers handle the empty case as NoHostAvailable before calling.
//
// Availability: any eligible host will do; the lexicographically smallest id
// is returned so selection is reproducible, but callers must not depend on
// which host is picked. Each confirmed booking makes its host busy, so
// repeated requests against the same instant cycle through all hosts.
//
// EqualDistribution: the host with the fewest upcoming service events
// (start >= now) wins; ties break on the lexicographically smallest user id.
func (s *RoundRobinSelector) Select(ctx context.Context, service *svcentity.Service, eligible []uuid.UUID, nowTS int64) (uuid.UUID, error) {
	if len(eligible) == 0 {
		return uuid.Nil, fmt.Errorf("eligible host set is empty")
	}

	sorted := make([]uuid.UUID, len(eligible))
	copy(sorted, eligible)
	sortHosts(sorted)

	switch service.Algorithm {
	case svcentity.RoundRobinEqualDistribution:
		counts, err := s.eventRepo.CountUpcomingServiceEvents(ctx, service.ID, sorted, nowTS)
		if err != nil {
			return uuid.Nil, fmt.Errorf("count upcoming service events: %w", err)
		}
		best := sorted[0]
		for _, host := range sorted[1:] {
			if counts[host] < counts[best] {
				best = host
			}
		}
		return best, nil
	default:
		// Availability
		return sorted[0], nil
	}
}
