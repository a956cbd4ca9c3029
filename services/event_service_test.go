package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/event"
)

func TestGetUpcomingEvents_UsesInjectedClock(t *testing.T) {
	store := storage.NewMemStorage()
	ctx := context.Background()

	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.CreateEvent(ctx, &event.InsertEvent{
		Name: "Gone", Description: "d", Date: "June 20", Time: "9 PM",
		Location: "l", StartsAt: base.AddDate(0, 0, -11),
	})
	require.NoError(t, err)
	_, err = store.CreateEvent(ctx, &event.InsertEvent{
		Name: "Coming", Description: "d", Date: "July 4", Time: "9 PM",
		Location: "l", StartsAt: base.AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	svc := NewEventService(store)
	svc.now = func() time.Time { return base }

	events, err := svc.GetUpcomingEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Coming", events[0].Name)
}
