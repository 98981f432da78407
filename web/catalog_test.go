// ABOUTME: Tests for the public catalog endpoints
// ABOUTME: Runs against the seeded starter dataset
package web

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
	"github.com/cravekind/backend/seed"
)

func newSeededServer(t *testing.T) *Server {
	t.Helper()
	s, database := newTestServer(t)
	require.NoError(t, seed.All(database))
	return s
}

func TestListCravings(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/cravings", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cravings []models.MeatCraving
	decodeBody(t, rec, &cravings)
	assert.Len(t, cravings, 5)
}

func TestGetCraving(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/cravings/beef", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var craving models.MeatCraving
	decodeBody(t, rec, &craving)
	assert.Equal(t, "Iron, B12, Protein", craving.Deficiency)

	// Valid meat type without a seeded profile.
	rec = doRequest(t, s, "GET", "/api/cravings/duck", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, s, "GET", "/api/cravings/tofu", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListAlternativesFiltered(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/alternatives?meat_type=beef", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var alternatives []models.Alternative
	decodeBody(t, rec, &alternatives)
	require.Len(t, alternatives, 3)
	for _, a := range alternatives {
		assert.Equal(t, "beef", a.MeatType)
	}
	// Best rated first.
	assert.Equal(t, "Impossible Burger", alternatives[0].Name)
}

func TestGetAlternative(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/alternatives", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var alternatives []models.Alternative
	decodeBody(t, rec, &alternatives)
	require.NotEmpty(t, alternatives)

	rec = doRequest(t, s, "GET", "/api/alternatives/"+alternatives[0].ID.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, "GET", "/api/alternatives/00000000-0000-0000-0000-000000000000", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, s, "GET", "/api/alternatives/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetRecipeCountsView(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/recipes?meat_type=tofu", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, s, "GET", "/api/recipes?featured=true", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var recipes []models.Recipe
	decodeBody(t, rec, &recipes)
	require.Len(t, recipes, 2)

	id := recipes[0].ID
	rec = doRequest(t, s, "GET", "/api/recipes/"+id.String(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var recipe models.Recipe
	decodeBody(t, rec, &recipe)
	assert.Equal(t, 1, recipe.ViewCount)
}

func TestListTestimonials(t *testing.T) {
	s := newSeededServer(t)

	rec := doRequest(t, s, "GET", "/api/testimonials", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var testimonials []models.Testimonial
	decodeBody(t, rec, &testimonials)
	assert.Len(t, testimonials, 3)
}

func TestSubmitReviewLandsPending(t *testing.T) {
	s, database := newTestServer(t)

	rec := doRequest(t, s, "POST", "/api/reviews", map[string]any{
		"user_name":  "Sam Park",
		"user_email": "sam@example.com",
		"type":       "testimonial",
		"title":      "Loving it",
		"content":    "Three weeks in and the cravings are gone.",
		"rating":     5,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var review models.Review
	decodeBody(t, rec, &review)
	assert.Equal(t, models.ReviewPending, review.Status)

	pending, err := db.ListReviews(database, models.ReviewPending, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	rec = doRequest(t, s, "POST", "/api/reviews", map[string]any{
		"user_name":  "Sam Park",
		"user_email": "sam@example.com",
		"type":       "blog_post",
		"title":      "x",
		"content":    "y",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitReviewRequiresRating(t *testing.T) {
	s, database := newTestServer(t)

	body := map[string]any{
		"user_name":  "Sam Park",
		"user_email": "sam@example.com",
		"type":       "testimonial",
		"title":      "Loving it",
		"content":    "Cravings gone.",
	}

	// No rating at all.
	rec := doRequest(t, s, "POST", "/api/reviews", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body["rating"] = 0
	rec = doRequest(t, s, "POST", "/api/reviews", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body["rating"] = 6
	rec = doRequest(t, s, "POST", "/api/reviews", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	pending, err := db.ListReviews(database, models.ReviewPending, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRecordAnalyticsEvent(t *testing.T) {
	s, database := newTestServer(t)

	rec := doRequest(t, s, "POST", "/api/analytics/events", map[string]any{
		"event_type": "search",
		"event_data": map[string]any{"meat_type": "beef"},
		"session_id": "sess-1",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body["id"])

	count, err := db.CountEvents(database, models.EventSearch, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec = doRequest(t, s, "POST", "/api/analytics/events", map[string]any{
		"event_type": "not_a_thing",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
