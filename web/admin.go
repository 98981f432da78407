// ABOUTME: Admin handlers for CRM, review moderation, and rollups
// ABOUTME: Every route here sits behind the admin-role middleware
package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/cravekind/backend/auth"
	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			skip = n
		}
	}

	contacts, err := db.ListContacts(s.db, skip, queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list contacts", err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	contact, err := db.GetContact(s.db, id)
	if err != nil {
		serverError(w, "Failed to get contact", err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var update models.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	contact, err := db.UpdateContact(s.db, id, &update)
	if err != nil {
		serverError(w, "Failed to update contact", err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleListInteractions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	interactions, err := db.ListInteractions(s.db, id, queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list interactions", err)
		return
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}
	writeJSON(w, http.StatusOK, interactions)
}

type interactionRequest struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	EmailSubject string `json:"email_subject"`
}

func (s *Server) handleCreateInteraction(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Title == "" || req.Type == "" {
		writeError(w, http.StatusUnprocessableEntity, "type and title are required")
		return
	}

	contact, err := db.GetContact(s.db, contactID)
	if err != nil {
		serverError(w, "Failed to get contact", err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	interaction := &models.Interaction{
		ContactID:    contactID,
		Type:         req.Type,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		EmailSubject: req.EmailSubject,
		CreatedBy:    adminEmail(r),
	}
	if err := db.CreateInteraction(s.db, interaction); err != nil {
		serverError(w, "Failed to create interaction", err)
		return
	}
	writeJSON(w, http.StatusCreated, interaction)
}

func (s *Server) handleCompleteInteraction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	interaction, err := db.CompleteInteraction(s.db, id)
	if err != nil {
		serverError(w, "Failed to complete interaction", err)
		return
	}
	if interaction == nil {
		writeError(w, http.StatusNotFound, "interaction not found")
		return
	}
	writeJSON(w, http.StatusOK, interaction)
}

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	var contactID *uuid.UUID
	if v := r.URL.Query().Get("contact_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid contact_id")
			return
		}
		contactID = &id
	}

	deals, err := db.ListDeals(s.db, contactID, r.URL.Query().Get("stage"), queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list deals", err)
		return
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	writeJSON(w, http.StatusOK, deals)
}

type dealRequest struct {
	ContactID   string  `json:"contact_id"`
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Stage       string  `json:"stage"`
	Probability int     `json:"probability"`
	AssignedTo  string  `json:"assigned_to"`
}

func (s *Server) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid contact_id")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if req.Value <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "deal value must be positive")
		return
	}
	if req.Probability < 0 || req.Probability > 100 {
		writeError(w, http.StatusUnprocessableEntity, "deal probability must be between 0 and 100")
		return
	}

	contact, err := db.GetContact(s.db, contactID)
	if err != nil {
		serverError(w, "Failed to get contact", err)
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	deal := &models.Deal{
		ContactID:   contactID,
		Title:       req.Title,
		Value:       req.Value,
		Stage:       req.Stage,
		Probability: req.Probability,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   adminEmail(r),
	}
	if err := db.CreateDeal(s.db, deal); err != nil {
		serverError(w, "Failed to create deal", err)
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

type dealStageRequest struct {
	Stage       string `json:"stage"`
	Probability int    `json:"probability"`
}

func (s *Server) handleUpdateDealStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dealStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Stage == "" {
		writeError(w, http.StatusUnprocessableEntity, "stage is required")
		return
	}

	deal, err := db.UpdateDealStage(s.db, id, req.Stage, req.Probability)
	if err != nil {
		serverError(w, "Failed to update deal", err)
		return
	}
	if deal == nil {
		writeError(w, http.StatusNotFound, "deal not found")
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := db.ListReviews(s.db, r.URL.Query().Get("status"), queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

type moderationRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleModerateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req moderationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.Status != models.ReviewApproved && req.Status != models.ReviewRejected {
		writeError(w, http.StatusUnprocessableEntity, "status must be approved or rejected")
		return
	}

	review, err := db.ModerateReview(s.db, id, req.Status, adminEmail(r))
	if err != nil {
		serverError(w, "Failed to moderate review", err)
		return
	}
	if review == nil {
		writeError(w, http.StatusNotFound, "review not found")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleCRMStats(w http.ResponseWriter, r *http.Request) {
	stats, err := db.GetCRMStats(s.db)
	if err != nil {
		serverError(w, "Failed to compute CRM stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := db.GetDashboardStats(s.db)
	if err != nil {
		serverError(w, "Failed to compute dashboard stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func adminEmail(r *http.Request) string {
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		return claims.Email
	}
	return ""
}
