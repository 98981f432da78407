// ABOUTME: Public catalog handlers
// ABOUTME: Health, cravings, alternatives, recipes, and testimonials
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := db.HealthCheck(s.db)
	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, health)
}

func (s *Server) handleListCravings(w http.ResponseWriter, r *http.Request) {
	cravings, err := db.ListMeatCravings(s.db)
	if err != nil {
		serverError(w, "Failed to list cravings", err)
		return
	}
	if cravings == nil {
		cravings = []models.MeatCraving{}
	}
	writeJSON(w, http.StatusOK, cravings)
}

func (s *Server) handleGetCraving(w http.ResponseWriter, r *http.Request) {
	meatType := chi.URLParam(r, "meatType")
	if !models.ValidMeatType(meatType) {
		writeError(w, http.StatusUnprocessableEntity, "unknown meat type")
		return
	}

	craving, err := db.GetMeatCraving(s.db, meatType)
	if err != nil {
		serverError(w, "Failed to get craving", err)
		return
	}
	if craving == nil {
		writeError(w, http.StatusNotFound, "craving profile not found")
		return
	}
	writeJSON(w, http.StatusOK, craving)
}

func (s *Server) handleListAlternatives(w http.ResponseWriter, r *http.Request) {
	meatType := r.URL.Query().Get("meat_type")
	if meatType != "" && !models.ValidMeatType(meatType) {
		writeError(w, http.StatusUnprocessableEntity, "unknown meat type")
		return
	}

	alternatives, err := db.ListAlternatives(s.db, meatType, queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list alternatives", err)
		return
	}
	if alternatives == nil {
		alternatives = []models.Alternative{}
	}
	writeJSON(w, http.StatusOK, alternatives)
}

func (s *Server) handleGetAlternative(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	alternative, err := db.GetAlternative(s.db, id)
	if err != nil {
		serverError(w, "Failed to get alternative", err)
		return
	}
	if alternative == nil {
		writeError(w, http.StatusNotFound, "alternative not found")
		return
	}

	recordEvent(s.db, r, models.EventViewAlternative, map[string]any{"alternative_id": id.String()})
	writeJSON(w, http.StatusOK, alternative)
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	meatType := r.URL.Query().Get("meat_type")
	if meatType != "" && !models.ValidMeatType(meatType) {
		writeError(w, http.StatusUnprocessableEntity, "unknown meat type")
		return
	}
	featured := r.URL.Query().Get("featured") == "true"

	recipes, err := db.ListRecipes(s.db, meatType, featured, queryLimit(r))
	if err != nil {
		serverError(w, "Failed to list recipes", err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	recipe, err := db.GetRecipe(s.db, id)
	if err != nil {
		serverError(w, "Failed to get recipe", err)
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	if err := db.IncrementRecipeViews(s.db, id); err == nil {
		recipe.ViewCount++
	}
	recordEvent(s.db, r, models.EventViewRecipe, map[string]any{"recipe_id": id.String()})
	writeJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"

	testimonials, err := db.ListTestimonials(s.db, featured)
	if err != nil {
		serverError(w, "Failed to list testimonials", err)
		return
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func queryLimit(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
