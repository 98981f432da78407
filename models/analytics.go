// ABOUTME: Data models for analytics events and dashboard rollups
// ABOUTME: Defines the append-only AnalyticsEvent and DashboardStats shapes
package models

import "time"

// Event types. Events are append-only facts; never updated or deleted.
const (
	EventSearch          = "search"
	EventViewAlternative = "view_alternative"
	EventAddFavorite     = "add_favorite"
	EventRemoveFavorite  = "remove_favorite"
	EventViewRecipe      = "view_recipe"
	EventUserSignup      = "user_signup"
	EventUserLogin       = "user_login"
	EventReviewSubmitted = "review_submitted"
	EventPageView        = "page_view"
)

var eventTypes = map[string]bool{
	EventSearch:          true,
	EventViewAlternative: true,
	EventAddFavorite:     true,
	EventRemoveFavorite:  true,
	EventViewRecipe:      true,
	EventUserSignup:      true,
	EventUserLogin:       true,
	EventReviewSubmitted: true,
	EventPageView:        true,
}

func ValidEventType(t string) bool { return eventTypes[t] }

type AnalyticsEvent struct {
	ID        string         `json:"id"` // ULID, sortable by creation time
	UserID    string         `json:"user_id,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	EventType string         `json:"event_type"`
	EventData map[string]any `json:"event_data"`
	PageURL   string         `json:"page_url,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// TrendPoint is one UTC-calendar-day bucket in a trend series.
type TrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// SearchTarget is one entry in the popular-searches list.
type SearchTarget struct {
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// DashboardStats is the rollup returned by the admin dashboard endpoint.
type DashboardStats struct {
	TotalUsers        int            `json:"total_users"`
	ActiveUsersToday  int            `json:"active_users_today"`
	ActiveUsersWeek   int            `json:"active_users_week"`
	ActiveUsersMonth  int            `json:"active_users_month"`
	TotalSearches     int            `json:"total_searches"`
	SearchesToday     int            `json:"searches_today"`
	TotalAlternatives int            `json:"total_alternatives"`
	TotalRecipes      int            `json:"total_recipes"`
	TotalReviews      int            `json:"total_reviews"`
	PendingReviews    int            `json:"pending_reviews"`
	PopularSearches   []SearchTarget `json:"popular_searches"`
	UserGrowth        []TrendPoint   `json:"user_growth"`
	SearchTrends      []TrendPoint   `json:"search_trends"`
}
