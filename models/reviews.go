// ABOUTME: Data models for reviews and testimonials
// ABOUTME: Defines Review with moderation status and the Testimonial struct
package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewType values.
const (
	ReviewAlternative = "alternative_review"
	ReviewTestimonial = "testimonial"
	ReviewRecipe      = "recipe_review"
)

// ReviewStatus values. Moderation moves pending → approved or rejected.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type Review struct {
	ID               uuid.UUID  `json:"id"`
	UserID           string     `json:"user_id"`
	UserName         string     `json:"user_name"`
	UserEmail        string     `json:"user_email"`
	Type             string     `json:"type"`
	TargetID         *uuid.UUID `json:"target_id,omitempty"` // reviewed alternative or recipe
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Rating           int        `json:"rating"` // 1-5
	HelpfulCount     int        `json:"helpful_count"`
	Status           string     `json:"status"`
	IsFeatured       bool       `json:"is_featured"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	TransitionPeriod string     `json:"transition_period,omitempty"` // "3 months meat-free", etc.
	VerifiedPurchase bool       `json:"verified_purchase"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	ApprovedBy       string     `json:"approved_by,omitempty"`
}

type Testimonial struct {
	ID               uuid.UUID `json:"id"`
	UserName         string    `json:"user_name"`
	UserAvatar       string    `json:"user_avatar,omitempty"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Rating           int       `json:"rating"`
	TransitionPeriod string    `json:"transition_period,omitempty"`
	IsFeatured       bool      `json:"is_featured"`
	AdminCreated     bool      `json:"admin_created"`
	CreatedAt        time.Time `json:"created_at"`
}
