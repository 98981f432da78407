// ABOUTME: Public review submission
// ABOUTME: New reviews land in the pending moderation queue
package web

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/google/uuid"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

type reviewSubmission struct {
	UserName         string `json:"user_name"`
	UserEmail        string `json:"user_email"`
	Type             string `json:"type"`
	TargetID         string `json:"target_id"`
	Title            string `json:"title"`
	Content          string `json:"content"`
	Rating           int    `json:"rating"`
	TransitionPeriod string `json:"transition_period"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.UserName == "" || req.Title == "" || req.Content == "" {
		writeError(w, http.StatusUnprocessableEntity, "user_name, title, and content are required")
		return
	}
	if _, err := mail.ParseAddress(req.UserEmail); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "user_email is invalid")
		return
	}
	switch req.Type {
	case models.ReviewAlternative, models.ReviewTestimonial, models.ReviewRecipe:
	default:
		writeError(w, http.StatusUnprocessableEntity, "unknown review type")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusUnprocessableEntity, "rating must be between 1 and 5")
		return
	}

	review := &models.Review{
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		Type:             req.Type,
		Title:            req.Title,
		Content:          req.Content,
		Rating:           req.Rating,
		TransitionPeriod: req.TransitionPeriod,
	}
	if req.TargetID != "" {
		id, err := uuid.Parse(req.TargetID)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid target_id")
			return
		}
		review.TargetID = &id
	}

	if err := db.CreateReview(s.db, review); err != nil {
		serverError(w, "Failed to create review", err)
		return
	}

	recordEvent(s.db, r, models.EventReviewSubmitted, map[string]any{"review_id": review.ID.String()})
	writeJSON(w, http.StatusCreated, review)
}
