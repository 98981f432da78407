// ABOUTME: Data models for the alternatives catalog
// ABOUTME: Defines Alternative, NutritionInfo, and MeatCraving structs
package models

import (
	"time"

	"github.com/google/uuid"
)

// AlternativeType values.
const (
	TypePlantBasedMeat = "plant_based_meat"
	TypeWholeFood      = "whole_food"
	TypeSupplement     = "supplement"
)

// MeatType values.
const (
	MeatBeef    = "beef"
	MeatChicken = "chicken"
	MeatPork    = "pork"
	MeatFish    = "fish"
	MeatLamb    = "lamb"
	MeatTurkey  = "turkey"
	MeatDuck    = "duck"
)

// MeatTypes lists every valid meat type classification.
var MeatTypes = []string{MeatBeef, MeatChicken, MeatPork, MeatFish, MeatLamb, MeatTurkey, MeatDuck}

func ValidMeatType(mt string) bool {
	for _, m := range MeatTypes {
		if m == mt {
			return true
		}
	}
	return false
}

type NutritionInfo struct {
	Protein     string `json:"protein"`
	Iron        string `json:"iron"`
	Calories    string `json:"calories"`
	Fat         string `json:"fat"`
	Fiber       string `json:"fiber"`
	B12         string `json:"b12"`
	Sodium      string `json:"sodium,omitempty"`
	Cholesterol string `json:"cholesterol,omitempty"`
}

type Alternative struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand"`
	Type            string        `json:"type"`
	MeatType        string        `json:"meat_type"`
	Description     string        `json:"description,omitempty"`
	Nutrition       NutritionInfo `json:"nutrition"`
	Benefits        []string      `json:"benefits"`
	Availability    string        `json:"availability"`
	PriceRange      string        `json:"price_range,omitempty"`
	PreparationTime string        `json:"preparation_time,omitempty"`
	DifficultyLevel string        `json:"difficulty_level,omitempty"`
	Ingredients     []string      `json:"ingredients"`
	Allergens       []string      `json:"allergens"`
	Certifications  []string      `json:"certifications"`
	ImageURL        string        `json:"image_url,omitempty"`
	Rating          float64       `json:"rating"`
	ReviewCount     int           `json:"review_count"`
	IsActive        bool          `json:"is_active"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// MeatCraving maps a craved meat to the nutrient deficiencies it usually
// signals and the plant-based supplements that cover them.
type MeatCraving struct {
	ID                     uuid.UUID `json:"id"`
	MeatType               string    `json:"meat_type"`
	Name                   string    `json:"name"`
	Deficiency             string    `json:"deficiency"`
	DeficiencyExplanation  string    `json:"deficiency_explanation"`
	MeatSideEffects        []string  `json:"meat_side_effects"`
	RecommendedSupplements []string  `json:"recommended_supplements"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
