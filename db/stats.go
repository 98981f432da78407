// ABOUTME: CRM and dashboard statistics queries
// ABOUTME: Assembles rollups from independent count and aggregate queries
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cravekind/backend/models"
)

// GetCRMStats computes lead rollups as of call time. Each figure comes
// from its own query; read skew between them is tolerated.
func GetCRMStats(database *sql.DB) (*models.CRMStats, error) {
	stats := &models.CRMStats{
		ContactsByStatus: make(map[string]int),
		ContactsBySource: make(map[string]int),
	}

	if err := database.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&stats.TotalContacts); err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	if err := database.QueryRow(`SELECT COUNT(*) FROM contacts WHERE created_at >= ?`, weekAgo).Scan(&stats.NewContactsThisWeek); err != nil {
		return nil, fmt.Errorf("failed to count weekly contacts: %w", err)
	}
	if err := database.QueryRow(`SELECT COUNT(*) FROM contacts WHERE created_at >= ?`, monthAgo).Scan(&stats.NewContactsThisMonth); err != nil {
		return nil, fmt.Errorf("failed to count monthly contacts: %w", err)
	}

	if err := groupCount(database, `SELECT status, COUNT(*) FROM contacts GROUP BY status ORDER BY COUNT(*) DESC`, stats.ContactsByStatus); err != nil {
		return nil, fmt.Errorf("failed to group contacts by status: %w", err)
	}
	if err := groupCount(database, `SELECT source, COUNT(*) FROM contacts GROUP BY source ORDER BY COUNT(*) DESC`, stats.ContactsBySource); err != nil {
		return nil, fmt.Errorf("failed to group contacts by source: %w", err)
	}

	if err := database.QueryRow(`SELECT COUNT(*) FROM contacts WHERE is_business_inquiry = 1`).Scan(&stats.BusinessInquiries); err != nil {
		return nil, fmt.Errorf("failed to count business inquiries: %w", err)
	}

	var emailsSent, emailsOpened int
	if err := database.QueryRow(`SELECT COALESCE(SUM(emails_sent), 0) FROM contacts`).Scan(&emailsSent); err != nil {
		return nil, fmt.Errorf("failed to sum emails sent: %w", err)
	}
	if err := database.QueryRow(`SELECT COALESCE(SUM(email_opens), 0) FROM contacts`).Scan(&emailsOpened); err != nil {
		return nil, fmt.Errorf("failed to sum email opens: %w", err)
	}
	if emailsSent > 0 {
		stats.EmailEngagementRate = float64(emailsOpened) / float64(emailsSent) * 100
	}

	rows, err := database.Query(`
		SELECT id, first_name, last_name, email, created_at, is_business_inquiry
		FROM contacts ORDER BY created_at DESC LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.ContactSummary
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt, &c.IsBusinessInquiry); err != nil {
			return nil, err
		}
		stats.RecentContacts = append(stats.RecentContacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func groupCount(database *sql.DB, query string, into map[string]int) error {
	rows, err := database.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}
	return rows.Err()
}

// GetDashboardStats computes the admin dashboard rollup from analytics
// facts and content counts. Day buckets use UTC calendar days.
func GetDashboardStats(database *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	totals := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM alternatives`, &stats.TotalAlternatives},
		{`SELECT COUNT(*) FROM recipes`, &stats.TotalRecipes},
		{`SELECT COUNT(*) FROM reviews`, &stats.TotalReviews},
		{`SELECT COUNT(*) FROM reviews WHERE status = 'pending'`, &stats.PendingReviews},
	}
	for _, t := range totals {
		if err := database.QueryRow(t.query).Scan(t.dest); err != nil {
			return nil, fmt.Errorf("failed dashboard count: %w", err)
		}
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	var err error
	if stats.ActiveUsersToday, err = CountDistinctUsers(database, models.EventUserLogin, today); err != nil {
		return nil, fmt.Errorf("failed to count active users today: %w", err)
	}
	if stats.ActiveUsersWeek, err = CountDistinctUsers(database, models.EventUserLogin, weekAgo); err != nil {
		return nil, fmt.Errorf("failed to count weekly active users: %w", err)
	}
	if stats.ActiveUsersMonth, err = CountDistinctUsers(database, models.EventUserLogin, monthAgo); err != nil {
		return nil, fmt.Errorf("failed to count monthly active users: %w", err)
	}

	if stats.TotalSearches, err = CountEvents(database, models.EventSearch, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to count searches: %w", err)
	}
	if stats.SearchesToday, err = CountEvents(database, models.EventSearch, today); err != nil {
		return nil, fmt.Errorf("failed to count today's searches: %w", err)
	}

	// Popular search targets come out of the event payload.
	rows, err := database.Query(`
		SELECT json_extract(event_data, '$.meat_type') AS target, COUNT(*) AS count
		FROM analytics
		WHERE event_type = ? AND json_extract(event_data, '$.meat_type') IS NOT NULL
		GROUP BY target
		ORDER BY count DESC
		LIMIT 10
	`, models.EventSearch)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular searches: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st models.SearchTarget
		if err := rows.Scan(&st.Target, &st.Count); err != nil {
			return nil, err
		}
		stats.PopularSearches = append(stats.PopularSearches, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Trailing 7-day trends, one bucket per UTC calendar day.
	for i := 0; i < 7; i++ {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var signups int
		if err := database.QueryRow(`
			SELECT COUNT(*) FROM users WHERE created_at >= ? AND created_at < ?
		`, dayStart, dayEnd).Scan(&signups); err != nil {
			return nil, fmt.Errorf("failed to bucket signups: %w", err)
		}
		stats.UserGrowth = append(stats.UserGrowth, models.TrendPoint{
			Date:  dayStart.Format("2006-01-02"),
			Count: signups,
		})

		var searches int
		if err := database.QueryRow(`
			SELECT COUNT(*) FROM analytics WHERE event_type = ? AND timestamp >= ? AND timestamp < ?
		`, models.EventSearch, dayStart, dayEnd).Scan(&searches); err != nil {
			return nil, fmt.Errorf("failed to bucket searches: %w", err)
		}
		stats.SearchTrends = append(stats.SearchTrends, models.TrendPoint{
			Date:  dayStart.Format("2006-01-02"),
			Count: searches,
		})
	}

	return stats, nil
}
