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

type ClubHandler struct {
	clubService *services.ClubService
}

func NewClubHandler(clubService *services.ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

func (h *ClubHandler) GetAllClubs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clubs, err := h.clubService.GetAllClubs(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch clubs")
		return
	}

	respondWithJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid club id")
		return
	}

	c, err := h.clubService.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Club not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch club")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *ClubHandler) GetFeaturedClubs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit, err := parseLimit(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	clubs, err := h.clubService.GetFeaturedClubs(ctx, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch featured clubs")
		return
	}

	respondWithJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandler) SearchClubs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := mux.Vars(r)["query"]

	clubs, err := h.clubService.SearchClubs(ctx, query)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to search clubs")
		return
	}

	respondWithJSON(w, http.StatusOK, clubs)
}

// parseLimit reads the optional {limit} path variable; absent means
// unlimited.
func parseLimit(r *http.Request) (int, error) {
	raw, ok := mux.Vars(r)["limit"]
	if !ok || raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("invalid limit")
	}
	return limit, nil
}
