// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Interaction, and Deal structs with enums
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactStatus values. Progression is forward-or-terminal by convention
// (new → contacted → qualified → converted, or lost); not enforced here.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// ContactSource values.
const (
	SourceWebsite     = "website"
	SourceContactForm = "contact_form"
	SourceSocialMedia = "social_media"
	SourceReferral    = "referral"
	SourceOrganic     = "organic"
	SourcePaidAd      = "paid_ad"
)

type Contact struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Company           string     `json:"company,omitempty"`
	Location          string     `json:"location,omitempty"`
	Message           string     `json:"message,omitempty"`
	Source            string     `json:"source"`
	Status            string     `json:"status"`
	DietaryInterests  []string   `json:"dietary_interests"`
	PlantBasedLevel   string     `json:"plant_based_level,omitempty"`
	Tags              []string   `json:"tags"`
	AdminNotes        string     `json:"admin_notes,omitempty"`
	EmailOpens        int        `json:"email_opens"`
	EmailClicks       int        `json:"email_clicks"`
	EmailsSent        int        `json:"emails_sent"`
	WebsiteVisits     int        `json:"website_visits"`
	LastEmailSent     *time.Time `json:"last_email_sent,omitempty"`
	LastEmailOpened   *time.Time `json:"last_email_opened,omitempty"`
	IsBusinessInquiry bool       `json:"is_business_inquiry"`
	InquiryType       string     `json:"inquiry_type,omitempty"` // partnership, sponsorship, general
	EstimatedValue    *float64   `json:"estimated_value,omitempty"`
	AssignedTo        string     `json:"assigned_to,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastContacted     *time.Time `json:"last_contacted,omitempty"`
}

// ContactUpdate carries the admin-editable subset of Contact fields.
// Nil pointers mean "leave unchanged".
type ContactUpdate struct {
	FirstName         *string   `json:"first_name,omitempty"`
	LastName          *string   `json:"last_name,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Company           *string   `json:"company,omitempty"`
	Location          *string   `json:"location,omitempty"`
	Source            *string   `json:"source,omitempty"`
	Status            *string   `json:"status,omitempty"`
	DietaryInterests  *[]string `json:"dietary_interests,omitempty"`
	PlantBasedLevel   *string   `json:"plant_based_level,omitempty"`
	Tags              *[]string `json:"tags,omitempty"`
	AdminNotes        *string   `json:"admin_notes,omitempty"`
	IsBusinessInquiry *bool     `json:"is_business_inquiry,omitempty"`
	InquiryType       *string   `json:"inquiry_type,omitempty"`
	EstimatedValue    *float64  `json:"estimated_value,omitempty"`
	AssignedTo        *string   `json:"assigned_to,omitempty"`
}

// businessKeywords flags inbound messages that look like commercial
// inquiries. Substring matching is a heuristic; false positives are fine.
var businessKeywords = []string{
	"business", "partnership", "collaboration", "sponsor", "advertise", "invest",
}

func IsBusinessInquiry(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// InteractionType constants.
const (
	InteractionEmail   = "email"
	InteractionPhone   = "phone"
	InteractionMeeting = "meeting"
	InteractionNote    = "note"
	InteractionTask    = "task"
)

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Interaction is a timestamped log entry tied to exactly one contact.
// Email interactions track subject/sent/opened/clicked; tasks carry a
// priority. Interactions are never implicitly deleted.
type Interaction struct {
	ID             uuid.UUID  `json:"id"`
	ContactID      uuid.UUID  `json:"contact_id"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	CreatedBy      string     `json:"created_by"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	IsCompleted    bool       `json:"is_completed"`
	EmailSubject   string     `json:"email_subject,omitempty"`
	EmailSentAt    *time.Time `json:"email_sent_at,omitempty"`
	EmailOpenedAt  *time.Time `json:"email_opened_at,omitempty"`
	EmailClickedAt *time.Time `json:"email_clicked_at,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Deal stages.
const (
	StageProspect    = "prospect"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed_won"
	StageClosedLost  = "closed_lost"
)

type Deal struct {
	ID                uuid.UUID  `json:"id"`
	ContactID         uuid.UUID  `json:"contact_id"`
	Title             string     `json:"title"`
	Value             float64    `json:"value"`
	Stage             string     `json:"stage"`
	Probability       int        `json:"probability"` // 0-100
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	ActualCloseDate   *time.Time `json:"actual_close_date,omitempty"`
	CreatedBy         string     `json:"created_by"`
	AssignedTo        string     `json:"assigned_to,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CRMStats is the rollup returned by the admin crm-stats endpoint.
type CRMStats struct {
	TotalContacts        int              `json:"total_contacts"`
	NewContactsThisWeek  int              `json:"new_contacts_this_week"`
	NewContactsThisMonth int              `json:"new_contacts_this_month"`
	ContactsByStatus     map[string]int   `json:"contacts_by_status"`
	ContactsBySource     map[string]int   `json:"contacts_by_source"`
	BusinessInquiries    int              `json:"business_inquiries"`
	EmailEngagementRate  float64          `json:"email_engagement_rate"`
	RecentContacts       []ContactSummary `json:"recent_contacts"`
}

// ContactSummary is the trimmed contact shape used in stats feeds.
type ContactSummary struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	CreatedAt         time.Time `json:"created_at"`
	IsBusinessInquiry bool      `json:"is_business_inquiry"`
}
