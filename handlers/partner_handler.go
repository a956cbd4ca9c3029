package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nightOutAPI/internal/types/partner"
	"nightOutAPI/services"
)

type PartnerHandler struct {
	partnerService *services.PartnerService
}

func NewPartnerHandler(partnerService *services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// GetPartners lists drinking-buddy candidates. Filters arrive as query
// parameters (gender, minAge, maxAge, nearby, drinks, music); with none
// set, the full candidate list comes back.
func (h *PartnerHandler) GetPartners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	criteria, err := parseMatchCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid age filter")
		return
	}

	partners, err := h.partnerService.GetPartners(ctx, criteria)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch potential partners")
		return
	}

	respondWithJSON(w, http.StatusOK, partners)
}

func parseMatchCriteria(r *http.Request) (partner.MatchCriteria, error) {
	q := r.URL.Query()
	var c partner.MatchCriteria

	c.Gender = q.Get("gender")
	c.Music = q.Get("music")

	var err error
	if c.MinAge, err = parseAge(q.Get("minAge")); err != nil {
		return c, err
	}
	if c.MaxAge, err = parseAge(q.Get("maxAge")); err != nil {
		return c, err
	}

	c.NearbyOnly = q.Get("nearby") == "true"

	if drinks := q.Get("drinks"); drinks != "" {
		for _, d := range strings.Split(drinks, ",") {
			if d = strings.TrimSpace(d); d != "" {
				c.DrinkTypes = append(c.DrinkTypes, d)
			}
		}
	}

	return c, nil
}

func parseAge(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	age, err := strconv.Atoi(raw)
	if err != nil || age < 0 {
		return 0, errors.New("invalid age filter")
	}
	return age, nil
}
