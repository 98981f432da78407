// ABOUTME: Data models for recipes
// ABOUTME: Defines Recipe struct with difficulty/cuisine enums and total-time correction
package models

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel values.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// CuisineType values.
const (
	CuisineItalian       = "italian"
	CuisineMexican       = "mexican"
	CuisineAsian         = "asian"
	CuisineAmerican      = "american"
	CuisineMediterranean = "mediterranean"
	CuisineIndian        = "indian"
	CuisineMiddleEastern = "middle_eastern"
	CuisineOther         = "other"
)

type Recipe struct {
	ID                  uuid.UUID         `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	MeatType            string            `json:"meat_type"` // the meat this recipe replaces
	AlternativeID       *uuid.UUID        `json:"alternative_id,omitempty"`
	CuisineType         string            `json:"cuisine_type"`
	PrepTime            int               `json:"prep_time"` // minutes
	CookTime            int               `json:"cook_time"`
	TotalTime           int               `json:"total_time"`
	Servings            int               `json:"servings"`
	Difficulty          string            `json:"difficulty"`
	Ingredients         []string          `json:"ingredients"`
	Instructions        []string          `json:"instructions"`
	Tips                []string          `json:"tips"`
	NutritionPerServing map[string]string `json:"nutrition_per_serving,omitempty"`
	Tags                []string          `json:"tags"`
	ImageURL            string            `json:"image_url,omitempty"`
	VideoURL            string            `json:"video_url,omitempty"`
	Rating              float64           `json:"rating"`
	ReviewCount         int               `json:"review_count"`
	ViewCount           int               `json:"view_count"`
	IsFeatured          bool              `json:"is_featured"`
	IsActive            bool              `json:"is_active"`
	CreatedBy           string            `json:"created_by"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// NormalizeTotalTime recomputes total_time as prep+cook when the stored
// value disagrees. Inconsistent input is corrected silently, not rejected.
func (r *Recipe) NormalizeTotalTime() {
	if r.PrepTime > 0 && r.CookTime > 0 && r.TotalTime != r.PrepTime+r.CookTime {
		r.TotalTime = r.PrepTime + r.CookTime
	}
}
