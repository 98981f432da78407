// ABOUTME: Account handlers for registration, login, and password recovery
// ABOUTME: Reset responses stay uniform so email enumeration learns nothing
package web

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/cravekind/backend/auth"
	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

type registerRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	AgeGroup     string   `json:"age_group"`
	DietaryGoals []string `json:"dietary_goals"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "email is invalid")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusUnprocessableEntity, "password must be at least 6 characters")
		return
	}
	if err := models.ValidateDietaryGoals(req.DietaryGoals); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	existing, err := db.GetUserByEmail(s.db, req.Email)
	if err != nil {
		serverError(w, "Registration lookup failed", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(w, "Password hashing failed", err)
		return
	}
	verificationToken, err := auth.GenerateToken()
	if err != nil {
		serverError(w, "Token generation failed", err)
		return
	}

	user := &models.User{
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		PasswordHash:      hash,
		Phone:             req.Phone,
		Location:          req.Location,
		AgeGroup:          req.AgeGroup,
		DietaryGoals:      req.DietaryGoals,
		VerificationToken: verificationToken,
	}
	if err := db.CreateUser(s.db, user); err != nil {
		serverError(w, "Registration failed", err)
		return
	}

	s.mailer.SendVerificationEmail(user.Email, user.Name, verificationToken)
	recordEvent(s.db, r, models.EventUserSignup, map[string]any{"user_id": user.ID.String()})

	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := db.GetUserByEmail(s.db, req.Email)
	if err != nil {
		serverError(w, "Login lookup failed", err)
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.jwt.Sign(user.ID.String(), user.Email, user.Role, auth.DefaultTokenTTL)
	if err != nil {
		serverError(w, "Token signing failed", err)
		return
	}

	if err := db.RecordLogin(s.db, user.ID); err != nil {
		serverError(w, "Failed to record login", err)
		return
	}
	event := &models.AnalyticsEvent{
		EventType: models.EventUserLogin,
		UserID:    user.ID.String(),
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
	if err := db.RecordEvent(s.db, event); err != nil {
		serverError(w, "Failed to record login event", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusUnprocessableEntity, "token is required")
		return
	}

	user, err := db.GetUserByVerificationToken(s.db, req.Token)
	if err != nil {
		serverError(w, "Verification lookup failed", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid verification token")
		return
	}
	if err := db.MarkUserVerified(s.db, user.ID); err != nil {
		serverError(w, "Verification failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email verified successfully"})
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (s *Server) handlePasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	// Same response whether or not the account exists.
	response := map[string]string{"message": "If that email is registered, a reset link is on its way."}

	user, err := db.GetUserByEmail(s.db, req.Email)
	if err != nil {
		serverError(w, "Reset lookup failed", err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusOK, response)
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		serverError(w, "Token generation failed", err)
		return
	}
	if err := db.SetResetToken(s.db, user.ID, token, time.Now().UTC().Add(time.Hour)); err != nil {
		serverError(w, "Failed to store reset token", err)
		return
	}

	s.mailer.SendPasswordResetEmail(user.Email, user.Name, token)
	writeJSON(w, http.StatusOK, response)
}

type passwordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (s *Server) handlePasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	var req passwordResetConfirm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusUnprocessableEntity, "token is required")
		return
	}
	if len(req.NewPassword) < 6 {
		writeError(w, http.StatusUnprocessableEntity, "password must be at least 6 characters")
		return
	}

	user, err := db.GetUserByResetToken(s.db, req.Token)
	if err != nil {
		serverError(w, "Reset lookup failed", err)
		return
	}
	if user == nil || user.ResetTokenExpires == nil || time.Now().UTC().After(*user.ResetTokenExpires) {
		writeError(w, http.StatusUnprocessableEntity, "invalid or expired reset token")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		serverError(w, "Password hashing failed", err)
		return
	}
	if err := db.UpdatePassword(s.db, user.ID, hash); err != nil {
		serverError(w, "Password update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
