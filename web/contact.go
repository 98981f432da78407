// ABOUTME: Contact-form intake handler
// ABOUTME: Stores the lead first, then sends best-effort notification emails
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

type contactFormSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

func (f *contactFormSubmission) validate() string {
	if strings.TrimSpace(f.FirstName) == "" {
		return "firstName is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		return "lastName is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		return "message is required"
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return "email is invalid"
	}
	return ""
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var form contactFormSubmission
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if msg := form.validate(); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	contact := &models.Contact{
		FirstName:         strings.TrimSpace(form.FirstName),
		LastName:          strings.TrimSpace(form.LastName),
		Email:             strings.TrimSpace(form.Email),
		Message:           form.Message,
		Source:            models.SourceContactForm,
		IsBusinessInquiry: models.IsBusinessInquiry(form.Message),
	}

	// The lead is durable before any email goes out. A failed send never
	// loses the contact.
	if err := db.CreateContact(s.db, contact); err != nil {
		serverError(w, "Contact form submission error", err)
		return
	}

	s.mailer.SendContactAlert(contact.FirstName, contact.LastName, contact.Email, contact.Message, contact.IsBusinessInquiry)
	s.mailer.SendContactAcknowledgment(contact.Email, contact.FirstName, contact.Message)

	log.Printf("Contact form submitted by %s", contact.Email)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Thank you for your message! We'll get back to you soon.",
	})
}
