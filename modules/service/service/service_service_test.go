package service

import (
	"context"
	"testing"

	"go-booking-engine/core/cache"
	"go-booking-engine/core/errors"
	"go-booking-engine/modules/service/dto"
	"go-booking-engine/modules/service/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memServiceRepo struct {
	services map[uuid.UUID]*entity.Service
	getCalls int
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
}

func (m *memServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	m.services[service.ID] = service
	return nil
}

func (m *memServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	m.getCalls++
	return m.services[id], nil
}

func (m *memServiceRepo) UpsertParticipant(ctx context.Context, p *entity.Participant) error {
	service, ok := m.services[p.ServiceID]
	if !ok {
		return nil
	}
	for i := range service.Participants {
		if service.Participants[i].UserID == p.UserID {
			service.Participants[i] = *p
			return nil
		}
	}
	service.Participants = append(service.Participants, *p)
	return nil
}

func (m *memServiceRepo) RemoveParticipant(ctx context.Context, serviceID, userID uuid.UUID) (bool, error) {
	service, ok := m.services[serviceID]
	if !ok {
		return false, nil
	}
	for i := range service.Participants {
		if service.Participants[i].UserID == userID {
			service.Participants = append(service.Participants[:i], service.Participants[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestCreateService(t *testing.T) {
	svc := NewServiceService(newMemServiceRepo(), cache.Noop())

	t.Run("defaults to the availability algorithm", func(t *testing.T) {
		created, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{Name: "Intro Call"})
		require.Nil(t, appErr)
		assert.Equal(t, entity.RoundRobinAvailability, created.Algorithm)
		assert.Contains(t, created.Slug, "intro-call")
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		_, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("rejects an unknown algorithm", func(t *testing.T) {
		_, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{
			Name:      "Intro Call",
			Algorithm: entity.RoundRobinAlgorithm("fifo"),
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("rejects negative booking bounds", func(t *testing.T) {
		negative := int64(-1)
		_, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{
			Name:               "Intro Call",
			ClosestBookingTime: &negative,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}

func TestGetService(t *testing.T) {
	t.Run("unknown id is not found", func(t *testing.T) {
		svc := NewServiceService(newMemServiceRepo(), cache.Noop())
		_, appErr := svc.GetService(context.Background(), uuid.New())
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})

	t.Run("looks up the repository on every noop cache miss", func(t *testing.T) {
		repo := newMemServiceRepo()
		svc := NewServiceService(repo, cache.Noop())
		created, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{Name: "Intro Call"})
		require.Nil(t, appErr)

		for i := 0; i < 3; i++ {
			_, appErr = svc.GetService(context.Background(), created.ID)
			require.Nil(t, appErr)
		}
		assert.Equal(t, 3, repo.getCalls)
	})
}

func TestAddParticipant(t *testing.T) {
	newService := func(t *testing.T) (*ServiceService, *entity.Service) {
		t.Helper()
		svc := NewServiceService(newMemServiceRepo(), cache.Noop())
		created, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{Name: "Intro Call"})
		require.Nil(t, appErr)
		return svc, created
	}

	t.Run("defaults to always available", func(t *testing.T) {
		svc, created := newService(t)
		p, appErr := svc.AddParticipant(context.Background(), created.ID, &dto.AddParticipantRequest{UserID: uuid.New()})
		require.Nil(t, appErr)
		assert.Equal(t, entity.TimePlanAlwaysAvailable, p.Availability.Kind)
	})

	t.Run("schedule availability requires a schedule id", func(t *testing.T) {
		svc, created := newService(t)
		_, appErr := svc.AddParticipant(context.Background(), created.ID, &dto.AddParticipantRequest{
			UserID:       uuid.New(),
			Availability: entity.TimePlanSchedule,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("rejects negative buffers", func(t *testing.T) {
		svc, created := newService(t)
		_, appErr := svc.AddParticipant(context.Background(), created.ID, &dto.AddParticipantRequest{
			UserID:       uuid.New(),
			BufferBefore: -1,
		})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("unknown service is not found", func(t *testing.T) {
		svc := NewServiceService(newMemServiceRepo(), cache.Noop())
		_, appErr := svc.AddParticipant(context.Background(), uuid.New(), &dto.AddParticipantRequest{UserID: uuid.New()})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestRemoveParticipant(t *testing.T) {
	svc := NewServiceService(newMemServiceRepo(), cache.Noop())
	created, appErr := svc.CreateService(context.Background(), &dto.CreateServiceRequest{Name: "Intro Call"})
	require.Nil(t, appErr)

	userID := uuid.New()
	_, appErr = svc.AddParticipant(context.Background(), created.ID, &dto.AddParticipantRequest{UserID: userID})
	require.Nil(t, appErr)

	require.Nil(t, svc.RemoveParticipant(context.Background(), created.ID, userID))

	appErr = svc.RemoveParticipant(context.Background(), created.ID, userID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
