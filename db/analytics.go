// ABOUTME: Analytics event database operations
// ABOUTME: Append-only event writes with ULID identities
package db

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cravekind/backend/models"
)

// RecordEvent appends an analytics fact. Events are immutable; there is no
// update or delete path on purpose.
func RecordEvent(database *sql.DB, event *models.AnalyticsEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.ID == "" {
		event.ID = ulid.MustNew(ulid.Timestamp(event.Timestamp), rand.Reader).String()
	}
	if event.EventData == nil {
		event.EventData = map[string]any{}
	}

	_, err := database.Exec(`
		INSERT INTO analytics (id, user_id, session_id, event_type, event_data, page_url, user_agent, ip_address, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, nullableString(event.UserID), nullableString(event.SessionID), event.EventType,
		objToJSON(event.EventData), nullableString(event.PageURL), nullableString(event.UserAgent),
		nullableString(event.IPAddress), event.Timestamp)

	return err
}

// CountEvents counts events of one type since a cutoff. A zero cutoff
// counts everything.
func CountEvents(database *sql.DB, eventType string, since time.Time) (int, error) {
	var count int
	var err error
	if since.IsZero() {
		err = database.QueryRow(`
			SELECT COUNT(*) FROM analytics WHERE event_type = ?
		`, eventType).Scan(&count)
	} else {
		err = database.QueryRow(`
			SELECT COUNT(*) FROM analytics WHERE event_type = ? AND timestamp >= ?
		`, eventType, since).Scan(&count)
	}
	return count, err
}

// CountDistinctUsers counts distinct users that produced an event type
// since a cutoff. Anonymous events (no user id) are excluded.
func CountDistinctUsers(database *sql.DB, eventType string, since time.Time) (int, error) {
	var count int
	err := database.QueryRow(`
		SELECT COUNT(DISTINCT user_id) FROM analytics
		WHERE event_type = ? AND timestamp >= ? AND user_id IS NOT NULL
	`, eventType, since).Scan(&count)
	return count, err
}
