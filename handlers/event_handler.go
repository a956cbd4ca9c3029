package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"nightOutAPI/internal/storage"
	"nightOutAPI/services"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	events, err := h.eventService.GetAllEvents(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	e, err := h.eventService.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Event not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	respondWithJSON(w, http.StatusOK, e)
}

func (h *EventHandler) GetFeaturedEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit, err := parseLimit(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	events, err := h.eventService.GetFeaturedEvents(ctx, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch featured events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit, err := parseLimit(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	events, err := h.eventService.GetUpcomingEvents(ctx, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch upcoming events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}

func (h *EventHandler) GetEventsByClub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clubID, err := strconv.Atoi(mux.Vars(r)["clubId"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid club id")
		return
	}

	events, err := h.eventService.GetEventsByClub(ctx, clubID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch club events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}
