// ABOUTME: Data models for user accounts
// ABOUTME: Defines User struct, role enum, and dietary-goal validation
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserRole values.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Location          string     `json:"location,omitempty"`
	AgeGroup          string     `json:"age_group,omitempty"`
	DietaryGoals      []string   `json:"dietary_goals"`
	PasswordHash      string     `json:"-"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	VerificationToken string     `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
	Favorites         []string   `json:"favorites"` // ids of favorited alternatives
	LastLogin         *time.Time `json:"last_login,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// validDietaryGoals is the closed vocabulary accepted at signup.
var validDietaryGoals = []string{
	"Reduce meat consumption",
	"Improve health",
	"Environmental impact",
	"Animal welfare",
	"Weight management",
	"Allergies/Intolerances",
}

// ValidateDietaryGoals rejects any goal outside the fixed vocabulary.
func ValidateDietaryGoals(goals []string) error {
	for _, goal := range goals {
		ok := false
		for _, valid := range validDietaryGoals {
			if goal == valid {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("invalid dietary goal: %s", goal)
		}
	}
	return nil
}
