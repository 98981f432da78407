// ABOUTME: Tests for analytics event recording and counting
// ABOUTME: Covers ULID assignment, cutoff counts, and distinct users
package db

import (
	"testing"
	"time"

	"github.com/cravekind/backend/models"
)

func TestRecordEventAssignsID(t *testing.T) {
	database := setupTestDB(t)

	event := &models.AnalyticsEvent{
		EventType: models.EventPageView,
		SessionID: "sess-1",
		PageURL:   "/alternatives",
	}
	if err := RecordEvent(database, event); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}
	if event.ID == "" {
		t.Fatal("Expected a generated event id")
	}
	if len(event.ID) != 26 {
		t.Errorf("Expected 26-char ULID, got %q", event.ID)
	}
	if event.Timestamp.IsZero() {
		t.Error("Expected timestamp defaulted")
	}
}

func TestCountEvents(t *testing.T) {
	database := setupTestDB(t)

	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		{EventType: models.EventSearch, Timestamp: now},
		{EventType: models.EventSearch, Timestamp: now.AddDate(0, 0, -10)},
		{EventType: models.EventPageView, Timestamp: now},
	}
	for i := range events {
		if err := RecordEvent(database, &events[i]); err != nil {
			t.Fatal(err)
		}
	}

	total, err := CountEvents(database, models.EventSearch, time.Time{})
	if err != nil {
		t.Fatalf("CountEvents failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 searches all-time, got %d", total)
	}

	recent, err := CountEvents(database, models.EventSearch, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("CountEvents with cutoff failed: %v", err)
	}
	if recent != 1 {
		t.Errorf("Expected 1 search in the last week, got %d", recent)
	}
}

func TestCountDistinctUsersExcludesAnonymous(t *testing.T) {
	database := setupTestDB(t)

	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		{EventType: models.EventUserLogin, UserID: "u1", Timestamp: now},
		{EventType: models.EventUserLogin, UserID: "u1", Timestamp: now},
		{EventType: models.EventUserLogin, UserID: "u2", Timestamp: now},
		{EventType: models.EventUserLogin, SessionID: "anon", Timestamp: now},
	}
	for i := range events {
		if err := RecordEvent(database, &events[i]); err != nil {
			t.Fatal(err)
		}
	}

	count, err := CountDistinctUsers(database, models.EventUserLogin, now.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("CountDistinctUsers failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 distinct users, got %d", count)
	}
}

func TestEventDataRoundTrip(t *testing.T) {
	database := setupTestDB(t)

	event := &models.AnalyticsEvent{
		EventType: models.EventSearch,
		EventData: map[string]any{"meat_type": "beef", "results": float64(6)},
	}
	if err := RecordEvent(database, event); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	var target string
	err := database.QueryRow(`
		SELECT json_extract(event_data, '$.meat_type') FROM analytics WHERE id = ?
	`, event.ID).Scan(&target)
	if err != nil {
		t.Fatalf("json_extract failed: %v", err)
	}
	if target != "beef" {
		t.Errorf("Expected meat_type beef in stored payload, got %q", target)
	}
}
