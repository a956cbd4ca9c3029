package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"nightOutAPI/internal/types/review"
	"nightOutAPI/services"
	"nightOutAPI/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clubID, err := strconv.Atoi(mux.Vars(r)["clubId"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid club id")
		return
	}

	reviews, err := h.reviewService.GetReviews(ctx, clubID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var ins review.InsertReview
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	if errs := utils.ValidateStruct(&ins); errs != nil {
		respondWithValidationErrors(w, "Invalid review data", errs)
		return
	}

	created, err := h.reviewService.CreateReview(ctx, &ins)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}
