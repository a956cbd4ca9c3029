package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/user"
	"nightOutAPI/middleware"
	"nightOutAPI/services"
)

func newUserRouter() *mux.Router {
	store := storage.NewSeededMemStorage()
	h := NewUserHandler(services.NewUserService(store))

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/users").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/me", h.GetProfile).Methods("GET")
	protected.HandleFunc("/me", h.UpdateProfile).Methods("PUT")
	return r
}

func doAuthed(t *testing.T, router *mux.Router, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetProfile(t *testing.T) {
	router := newUserRouter()

	token, err := middleware.IssueToken(1)
	require.NoError(t, err)

	rr := doAuthed(t, router, "GET", "/api/users/me", token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var u user.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.Equal(t, "sarah_89", u.Username)
	assert.Equal(t, "sarah@example.com", u.Email)

	// The stored hash must never leave the server.
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestGetProfile_NoToken(t *testing.T) {
	router := newUserRouter()

	rr := doAuthed(t, router, "GET", "/api/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	router := newUserRouter()

	token, err := middleware.IssueToken(999)
	require.NoError(t, err)

	rr := doAuthed(t, router, "GET", "/api/users/me", token, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "User not found")
}

func TestUpdateProfile_Partial(t *testing.T) {
	router := newUserRouter()

	token, err := middleware.IssueToken(2)
	require.NoError(t, err)

	rr := doAuthed(t, router, "PUT", "/api/users/me", token,
		`{"vibePref": "Karaoke bars", "drinkPreferences": ["Cider"]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var u user.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.Equal(t, "Karaoke bars", u.VibePref)
	assert.Equal(t, []string{"Cider"}, u.DrinkPreferences)

	// Untouched fields keep their values.
	assert.Equal(t, "mike_31", u.Username)
	assert.Equal(t, 31, u.Age)
}

func TestUpdateProfile_InvalidBody(t *testing.T) {
	router := newUserRouter()

	token, err := middleware.IssueToken(1)
	require.NoError(t, err)

	rr := doAuthed(t, router, "PUT", "/api/users/me", token, `{"vibePref": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid profile data")
}
