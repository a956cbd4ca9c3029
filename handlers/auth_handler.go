package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"nightOutAPI/internal/types/user"
	"nightOutAPI/middleware"
	"nightOutAPI/services"
	"nightOutAPI/utils"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		respondWithValidationErrors(w, "Invalid user data", errs)
		return
	}

	created, err := h.userService.Register(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			respondWithError(w, http.StatusConflict, "Username already taken")
		case errors.Is(err, services.ErrEmailTaken):
			respondWithError(w, http.StatusConflict, "Email already registered")
		default:
			log.Printf("Register failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	token, err := middleware.IssueToken(created.ID)
	if err != nil {
		log.Printf("Token issue failed for user %d: %v", created.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondWithJSON(w, http.StatusCreated, user.AuthResponse{User: created, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid login data")
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		respondWithValidationErrors(w, "Invalid login data", errs)
		return
	}

	u, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("Login failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	token, err := middleware.IssueToken(u.ID)
	if err != nil {
		log.Printf("Token issue failed for user %d: %v", u.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	respondWithJSON(w, http.StatusOK, user.AuthResponse{User: u, Token: token})
}
