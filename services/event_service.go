package services

import (
	"context"
	"time"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/event"
)

type EventService struct {
	store storage.Storage
	now   func() time.Time
}

func NewEventService(store storage.Storage) *EventService {
	return &EventService{store: store, now: time.Now}
}

func (s *EventService) GetAllEvents(ctx context.Context) ([]event.Event, error) {
	return s.store.GetEvents(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	return s.store.GetEvent(ctx, id)
}

func (s *EventService) GetFeaturedEvents(ctx context.Context, limit int) ([]event.Event, error) {
	return s.store.GetFeaturedEvents(ctx, limit)
}

// GetUpcomingEvents returns events that have not started yet, soonest
// first.
func (s *EventService) GetUpcomingEvents(ctx context.Context, limit int) ([]event.Event, error) {
	return s.store.GetUpcomingEvents(ctx, s.now(), limit)
}

func (s *EventService) GetEventsByClub(ctx context.Context, clubID int) ([]event.Event, error) {
	return s.store.GetEventsByClub(ctx, clubID)
}
