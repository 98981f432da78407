// ABOUTME: Alternatives catalog and meat craving database operations
// ABOUTME: Handles lookups, filtered listings, and natural-key upserts
package db

import (
	"database/sql"

	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const alternativeColumns = `id, name, brand, type, meat_type, description, nutrition,
	benefits, availability, price_range, preparation_time, difficulty_level,
	ingredients, allergens, certifications, image_url, rating, review_count,
	is_active, created_at, updated_at`

// UpsertAlternative inserts or replaces an alternative keyed by name+brand.
// An existing row keeps its id and created_at; everything else is replaced.
func UpsertAlternative(database *sql.DB, alt *models.Alternative) error {
	if alt.ID == uuid.Nil {
		alt.ID = uuid.New()
	}
	now := time.Now().UTC()
	if alt.CreatedAt.IsZero() {
		alt.CreatedAt = now
	}
	alt.UpdatedAt = now

	_, err := database.Exec(`
		INSERT INTO alternatives (`+alternativeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name, brand) DO UPDATE SET
			type = excluded.type,
			meat_type = excluded.meat_type,
			description = excluded.description,
			nutrition = excluded.nutrition,
			benefits = excluded.benefits,
			availability = excluded.availability,
			price_range = excluded.price_range,
			preparation_time = excluded.preparation_time,
			difficulty_level = excluded.difficulty_level,
			ingredients = excluded.ingredients,
			allergens = excluded.allergens,
			certifications = excluded.certifications,
			image_url = excluded.image_url,
			rating = excluded.rating,
			review_count = excluded.review_count,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at
	`, alt.ID.String(), alt.Name, alt.Brand, alt.Type, alt.MeatType, alt.Description,
		objToJSON(alt.Nutrition), listToJSON(alt.Benefits), alt.Availability,
		alt.PriceRange, alt.PreparationTime, alt.DifficultyLevel,
		listToJSON(alt.Ingredients), listToJSON(alt.Allergens), listToJSON(alt.Certifications),
		alt.ImageURL, alt.Rating, alt.ReviewCount, alt.IsActive, alt.CreatedAt, alt.UpdatedAt)

	return err
}

func scanAlternative(row rowScanner) (*models.Alternative, error) {
	a := &models.Alternative{}
	var (
		description, priceRange, prepTime, difficulty, imageURL sql.NullString
		nutrition, benefits, ingredients, allergens, certs      string
	)

	err := row.Scan(
		&a.ID, &a.Name, &a.Brand, &a.Type, &a.MeatType, &description, &nutrition,
		&benefits, &a.Availability, &priceRange, &prepTime, &difficulty,
		&ingredients, &allergens, &certs, &imageURL, &a.Rating, &a.ReviewCount,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Description = description.String
	a.PriceRange = priceRange.String
	a.PreparationTime = prepTime.String
	a.DifficultyLevel = difficulty.String
	a.ImageURL = imageURL.String
	objFromJSON(nutrition, &a.Nutrition)
	a.Benefits = listFromJSON(benefits)
	a.Ingredients = listFromJSON(ingredients)
	a.Allergens = listFromJSON(allergens)
	a.Certifications = listFromJSON(certs)

	return a, nil
}

func GetAlternative(database *sql.DB, id uuid.UUID) (*models.Alternative, error) {
	alt, err := scanAlternative(database.QueryRow(`
		SELECT `+alternativeColumns+` FROM alternatives WHERE id = ?
	`, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return alt, nil
}

// GetAlternativeByName looks up by the natural key, name plus brand.
func GetAlternativeByName(database *sql.DB, name, brand string) (*models.Alternative, error) {
	alt, err := scanAlternative(database.QueryRow(`
		SELECT `+alternativeColumns+` FROM alternatives WHERE name = ? AND brand = ?
	`, name, brand))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return alt, nil
}

// ListAlternatives returns active alternatives, optionally filtered by the
// meat type they replace, best rated first.
func ListAlternatives(database *sql.DB, meatType string, limit int) ([]models.Alternative, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + alternativeColumns + ` FROM alternatives WHERE is_active = 1`
	var args []any
	if meatType != "" {
		query += ` AND meat_type = ?`
		args = append(args, meatType)
	}
	query += ` ORDER BY rating DESC, name LIMIT ?`
	args = append(args, limit)

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alternatives []models.Alternative
	for rows.Next() {
		a, err := scanAlternative(rows)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, *a)
	}

	return alternatives, rows.Err()
}

// UpsertMeatCraving inserts or replaces a craving profile keyed by meat type.
func UpsertMeatCraving(database *sql.DB, craving *models.MeatCraving) error {
	if craving.ID == uuid.Nil {
		craving.ID = uuid.New()
	}
	now := time.Now().UTC()
	if craving.CreatedAt.IsZero() {
		craving.CreatedAt = now
	}
	craving.UpdatedAt = now

	_, err := database.Exec(`
		INSERT INTO meat_cravings (id, meat_type, name, deficiency, deficiency_explanation, meat_side_effects, recommended_supplements, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(meat_type) DO UPDATE SET
			name = excluded.name,
			deficiency = excluded.deficiency,
			deficiency_explanation = excluded.deficiency_explanation,
			meat_side_effects = excluded.meat_side_effects,
			recommended_supplements = excluded.recommended_supplements,
			updated_at = excluded.updated_at
	`, craving.ID.String(), craving.MeatType, craving.Name, craving.Deficiency, craving.DeficiencyExplanation,
		listToJSON(craving.MeatSideEffects), listToJSON(craving.RecommendedSupplements),
		craving.CreatedAt, craving.UpdatedAt)

	return err
}

func scanMeatCraving(row rowScanner) (*models.MeatCraving, error) {
	mc := &models.MeatCraving{}
	var sideEffects, supplements string

	err := row.Scan(&mc.ID, &mc.MeatType, &mc.Name, &mc.Deficiency, &mc.DeficiencyExplanation,
		&sideEffects, &supplements, &mc.CreatedAt, &mc.UpdatedAt)
	if err != nil {
		return nil, err
	}

	mc.MeatSideEffects = listFromJSON(sideEffects)
	mc.RecommendedSupplements = listFromJSON(supplements)

	return mc, nil
}

func GetMeatCraving(database *sql.DB, meatType string) (*models.MeatCraving, error) {
	craving, err := scanMeatCraving(database.QueryRow(`
		SELECT id, meat_type, name, deficiency, deficiency_explanation, meat_side_effects, recommended_supplements, created_at, updated_at
		FROM meat_cravings WHERE meat_type = ?
	`, meatType))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return craving, nil
}

func ListMeatCravings(database *sql.DB) ([]models.MeatCraving, error) {
	rows, err := database.Query(`
		SELECT id, meat_type, name, deficiency, deficiency_explanation, meat_side_effects, recommended_supplements, created_at, updated_at
		FROM meat_cravings ORDER BY meat_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cravings []models.MeatCraving
	for rows.Next() {
		mc, err := scanMeatCraving(rows)
		if err != nil {
			return nil, err
		}
		cravings = append(cravings, *mc)
	}

	return cravings, rows.Err()
}
