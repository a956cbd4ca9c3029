package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/partner"
	"nightOutAPI/services"
)

func newPartnerRouter() *mux.Router {
	store := storage.NewSeededMemStorage()
	h := NewPartnerHandler(services.NewPartnerService(store))

	r := mux.NewRouter()
	r.HandleFunc("/api/partners", h.GetPartners).Methods("GET")
	return r
}

func TestGetPartners_Unfiltered(t *testing.T) {
	router := newPartnerRouter()

	rr := doGet(t, router, "/api/partners")
	require.Equal(t, http.StatusOK, rr.Code)

	var partners []partner.Partner
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &partners))
	assert.Len(t, partners, 4)

	// Sanitized view only: no emails in the candidate payload.
	assert.NotContains(t, rr.Body.String(), "@example.com")
}

func TestGetPartners_AgeRangeFilter(t *testing.T) {
	router := newPartnerRouter()

	// Seed ages are 27, 31, 25, 29; [26,30] keeps sarah_89 and david_29.
	rr := doGet(t, router, "/api/partners?minAge=26&maxAge=30")
	require.Equal(t, http.StatusOK, rr.Code)

	var partners []partner.Partner
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &partners))
	require.Len(t, partners, 2)
	assert.Equal(t, "sarah_89", partners[0].Username)
	assert.Equal(t, "david_29", partners[1].Username)
}

func TestGetPartners_CombinedFilters(t *testing.T) {
	router := newPartnerRouter()

	rr := doGet(t, router, "/api/partners?gender=male&drinks=Beer,Wine")
	require.Equal(t, http.StatusOK, rr.Code)

	var partners []partner.Partner
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &partners))
	require.Len(t, partners, 2)
	for _, p := range partners {
		assert.Equal(t, "male", p.Gender)
	}

	rr = doGet(t, router, "/api/partners?music=jazz")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &partners))
	require.Len(t, partners, 1)
	assert.Equal(t, "david_29", partners[0].Username)
}

func TestGetPartners_InvalidAgeFilter(t *testing.T) {
	router := newPartnerRouter()

	rr := doGet(t, router, "/api/partners?minAge=abc")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
