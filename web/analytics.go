// ABOUTME: Analytics event intake and server-side event capture
// ABOUTME: Events are append-only facts; recording is best effort
package web

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

type eventSubmission struct {
	EventType string         `json:"event_type"`
	EventData map[string]any `json:"event_data"`
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	PageURL   string         `json:"page_url"`
}

func (s *Server) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var sub eventSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if !models.ValidEventType(sub.EventType) {
		writeError(w, http.StatusUnprocessableEntity, "unknown event type")
		return
	}

	event := &models.AnalyticsEvent{
		EventType: sub.EventType,
		EventData: sub.EventData,
		SessionID: sub.SessionID,
		UserID:    sub.UserID,
		PageURL:   sub.PageURL,
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
	if err := db.RecordEvent(s.db, event); err != nil {
		serverError(w, "Failed to record event", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": event.ID})
}

// recordEvent captures a server-side analytics fact without ever
// failing the surrounding request.
func recordEvent(database *sql.DB, r *http.Request, eventType string, data map[string]any) {
	event := &models.AnalyticsEvent{
		EventType: eventType,
		EventData: data,
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
	if err := db.RecordEvent(database, event); err != nil {
		log.Printf("Failed to record %s event: %v", eventType, err)
	}
}
