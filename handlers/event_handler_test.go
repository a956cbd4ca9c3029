package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/event"
	"nightOutAPI/services"
)

func newEventRouter() *mux.Router {
	store := storage.NewSeededMemStorage()
	h := NewEventHandler(services.NewEventService(store))

	r := mux.NewRouter()
	r.HandleFunc("/api/events", h.GetAllEvents).Methods("GET")
	r.HandleFunc("/api/events/featured", h.GetFeaturedEvents).Methods("GET")
	r.HandleFunc("/api/events/featured/{limit:[0-9]+}", h.GetFeaturedEvents).Methods("GET")
	r.HandleFunc("/api/events/upcoming", h.GetUpcomingEvents).Methods("GET")
	r.HandleFunc("/api/events/upcoming/{limit:[0-9]+}", h.GetUpcomingEvents).Methods("GET")
	r.HandleFunc("/api/events/club/{clubId:[0-9]+}", h.GetEventsByClub).Methods("GET")
	r.HandleFunc("/api/events/{id:[0-9]+}", h.GetEvent).Methods("GET")
	return r
}

func TestGetAllEvents(t *testing.T) {
	router := newEventRouter()

	rr := doGet(t, router, "/api/events")
	require.Equal(t, http.StatusOK, rr.Code)

	var events []event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 4)
}

func TestGetEvent_ByIDAndNotFound(t *testing.T) {
	router := newEventRouter()

	rr := doGet(t, router, "/api/events/1")
	require.Equal(t, http.StatusOK, rr.Code)

	var e event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "Summer Blast Party", e.Name)
	assert.Len(t, e.Artists, 3)

	rr = doGet(t, router, "/api/events/77")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Event not found")
}

func TestGetFeaturedEvents_Limit(t *testing.T) {
	router := newEventRouter()

	rr := doGet(t, router, "/api/events/featured")
	require.Equal(t, http.StatusOK, rr.Code)

	var events []event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 2)

	rr = doGet(t, router, "/api/events/featured/1")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 1)
}

func TestGetUpcomingEvents_SortedSoonestFirst(t *testing.T) {
	router := newEventRouter()

	// All seed events start in the future relative to seeding.
	rr := doGet(t, router, "/api/events/upcoming")
	require.Equal(t, http.StatusOK, rr.Code)

	var events []event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 4)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].StartsAt.Before(events[i-1].StartsAt))
	}

	rr = doGet(t, router, "/api/events/upcoming/2")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 2)
}

func TestGetEventsByClub(t *testing.T) {
	router := newEventRouter()

	rr := doGet(t, router, "/api/events/club/2")
	require.Equal(t, http.StatusOK, rr.Code)

	var events []event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, 2, e.VenueID)
	}
}
