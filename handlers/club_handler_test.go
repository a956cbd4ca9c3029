package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/club"
	"nightOutAPI/services"
)

func newClubRouter() *mux.Router {
	store := storage.NewSeededMemStorage()
	h := NewClubHandler(services.NewClubService(store))

	r := mux.NewRouter()
	r.HandleFunc("/api/clubs", h.GetAllClubs).Methods("GET")
	r.HandleFunc("/api/clubs/featured", h.GetFeaturedClubs).Methods("GET")
	r.HandleFunc("/api/clubs/featured/{limit:[0-9]+}", h.GetFeaturedClubs).Methods("GET")
	r.HandleFunc("/api/clubs/search/{query}", h.SearchClubs).Methods("GET")
	r.HandleFunc("/api/clubs/{id:[0-9]+}", h.GetClub).Methods("GET")
	return r
}

func doGet(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetAllClubs(t *testing.T) {
	router := newClubRouter()

	rr := doGet(t, router, "/api/clubs")
	assert.Equal(t, http.StatusOK, rr.Code)

	var clubs []club.Club
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clubs))
	assert.Len(t, clubs, 4)
}

func TestGetClub_ByID(t *testing.T) {
	router := newClubRouter()

	rr := doGet(t, router, "/api/clubs/2")
	assert.Equal(t, http.StatusOK, rr.Code)

	var c club.Club
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "Skyline Lounge", c.Name)
}

func TestGetClub_NotFound(t *testing.T) {
	router := newClubRouter()

	rr := doGet(t, router, "/api/clubs/99")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Club not found", body["message"])
}

func TestGetFeaturedClubs_WithAndWithoutLimit(t *testing.T) {
	router := newClubRouter()

	rr := doGet(t, router, "/api/clubs/featured")
	assert.Equal(t, http.StatusOK, rr.Code)

	var clubs []club.Club
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clubs))
	require.Len(t, clubs, 1)
	assert.True(t, clubs[0].IsFeatured)

	// Limit larger than the featured set is not an error.
	rr = doGet(t, router, "/api/clubs/featured/2")
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clubs))
	assert.Len(t, clubs, 1)
}

func TestSearchClubs(t *testing.T) {
	router := newClubRouter()

	rr := doGet(t, router, "/api/clubs/search/jazz")
	assert.Equal(t, http.StatusOK, rr.Code)

	var clubs []club.Club
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &clubs))
	require.Len(t, clubs, 1)
	assert.Equal(t, "Rhythm & Blues", clubs[0].Name)
}

func TestGetClubs_RepeatedCallsIdentical(t *testing.T) {
	router := newClubRouter()

	first := doGet(t, router, "/api/clubs")
	second := doGet(t, router, "/api/clubs")
	assert.Equal(t, first.Body.String(), second.Body.String())
}
