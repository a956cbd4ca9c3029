package handlers

import (
	"encoding/json"
	"net/http"

	"nightOutAPI/utils"
)

// Helper functions shared by every handler. Error bodies are always
// {"message": ...}, with an "errors" array added for validation
// failures.

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

func respondWithValidationErrors(w http.ResponseWriter, message string, errs []utils.FieldError) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": message,
		"errors":  errs,
	})
}
