// ABOUTME: Recipe database operations
// ABOUTME: Handles filtered listings and title-keyed upserts with time correction
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const recipeColumns = `id, title, description, meat_type, alternative_id, cuisine_type,
	prep_time, cook_time, total_time, servings, difficulty,
	ingredients, instructions, tips, nutrition_per_serving, tags,
	image_url, video_url, rating, review_count, view_count,
	is_featured, is_active, created_by, created_at, updated_at`

// UpsertRecipe inserts or replaces a recipe keyed by title. Total time is
// recomputed from prep+cook before storage when inconsistent.
func UpsertRecipe(database *sql.DB, recipe *models.Recipe) error {
	recipe.NormalizeTotalTime()
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	now := time.Now().UTC()
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	var altID any
	if recipe.AlternativeID != nil {
		altID = recipe.AlternativeID.String()
	}
	var nutrition any
	if recipe.NutritionPerServing != nil {
		nutrition = objToJSON(recipe.NutritionPerServing)
	}

	_, err := database.Exec(`
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			description = excluded.description,
			meat_type = excluded.meat_type,
			alternative_id = excluded.alternative_id,
			cuisine_type = excluded.cuisine_type,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			total_time = excluded.total_time,
			servings = excluded.servings,
			difficulty = excluded.difficulty,
			ingredients = excluded.ingredients,
			instructions = excluded.instructions,
			tips = excluded.tips,
			nutrition_per_serving = excluded.nutrition_per_serving,
			tags = excluded.tags,
			image_url = excluded.image_url,
			video_url = excluded.video_url,
			rating = excluded.rating,
			is_featured = excluded.is_featured,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at
	`, recipe.ID.String(), recipe.Title, recipe.Description, recipe.MeatType, altID, recipe.CuisineType,
		recipe.PrepTime, recipe.CookTime, recipe.TotalTime, recipe.Servings, recipe.Difficulty,
		listToJSON(recipe.Ingredients), listToJSON(recipe.Instructions), listToJSON(recipe.Tips),
		nutrition, listToJSON(recipe.Tags), recipe.ImageURL, recipe.VideoURL,
		recipe.Rating, recipe.ReviewCount, recipe.ViewCount,
		recipe.IsFeatured, recipe.IsActive, recipe.CreatedBy, recipe.CreatedAt, recipe.UpdatedAt)

	return err
}

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	r := &models.Recipe{}
	var (
		description, imageURL, videoURL       sql.NullString
		altID, nutrition                      sql.NullString
		ingredients, instructions, tips, tags string
	)

	err := row.Scan(
		&r.ID, &r.Title, &description, &r.MeatType, &altID, &r.CuisineType,
		&r.PrepTime, &r.CookTime, &r.TotalTime, &r.Servings, &r.Difficulty,
		&ingredients, &instructions, &tips, &nutrition, &tags,
		&imageURL, &videoURL, &r.Rating, &r.ReviewCount, &r.ViewCount,
		&r.IsFeatured, &r.IsActive, &r.CreatedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Description = description.String
	r.ImageURL = imageURL.String
	r.VideoURL = videoURL.String
	if altID.Valid {
		if id, err := uuid.Parse(altID.String); err == nil {
			r.AlternativeID = &id
		}
	}
	if nutrition.Valid {
		objFromJSON(nutrition.String, &r.NutritionPerServing)
	}
	r.Ingredients = listFromJSON(ingredients)
	r.Instructions = listFromJSON(instructions)
	r.Tips = listFromJSON(tips)
	r.Tags = listFromJSON(tags)

	return r, nil
}

func GetRecipe(database *sql.DB, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := scanRecipe(database.QueryRow(`
		SELECT `+recipeColumns+` FROM recipes WHERE id = ?
	`, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func ListRecipes(database *sql.DB, meatType string, featuredOnly bool, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE is_active = 1`
	var args []any
	if meatType != "" {
		query += ` AND meat_type = ?`
		args = append(args, meatType)
	}
	if featuredOnly {
		query += ` AND is_featured = 1`
	}
	query += ` ORDER BY rating DESC, title LIMIT ?`
	args = append(args, limit)

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}

	return recipes, rows.Err()
}

func IncrementRecipeViews(database *sql.DB, id uuid.UUID) error {
	_, err := database.Exec(`
		UPDATE recipes SET view_count = view_count + 1, updated_at = ? WHERE id = ?
	`, time.Now().UTC(), id.String())
	return err
}
