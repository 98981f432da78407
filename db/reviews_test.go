// ABOUTME: Tests for reviews and testimonials
// ABOUTME: Covers pending default, moderation stamping, and testimonial upserts
package db

import (
	"testing"

	"github.com/cravekind/backend/models"
)

func TestCreateReviewDefaultsToPending(t *testing.T) {
	database := setupTestDB(t)

	review := &models.Review{
		UserName:  "Sarah Johnson",
		UserEmail: "sarah@example.com",
		Type:      models.ReviewTestimonial,
		Title:     "Changed my relationship with food",
		Content:   "Six months in and I don't miss meat at all.",
		Rating:    5,
	}
	if err := CreateReview(database, review); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	if review.Status != models.ReviewPending {
		t.Errorf("Expected default status pending, got %s", review.Status)
	}

	pending, err := ListReviews(database, models.ReviewPending, 0)
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("Expected 1 pending review, got %d", len(pending))
	}
}

func TestModerateReview(t *testing.T) {
	database := setupTestDB(t)

	review := &models.Review{UserName: "Mike Chen", UserEmail: "mike@example.com", Type: models.ReviewAlternative, Title: "Great texture", Content: "Fooled my whole family.", Rating: 4}
	if err := CreateReview(database, review); err != nil {
		t.Fatal(err)
	}

	approved, err := ModerateReview(database, review.ID, models.ReviewApproved, "admin@cravekind.ca")
	if err != nil {
		t.Fatalf("ModerateReview failed: %v", err)
	}
	if approved == nil {
		t.Fatal("ModerateReview returned nil for existing review")
	}
	if approved.Status != models.ReviewApproved {
		t.Errorf("Expected status approved, got %s", approved.Status)
	}
	if approved.ApprovedAt == nil || approved.ApprovedBy != "admin@cravekind.ca" {
		t.Error("Approval should stamp approver and time")
	}

	rejected, err := ModerateReview(database, review.ID, models.ReviewRejected, "admin@cravekind.ca")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != models.ReviewRejected {
		t.Errorf("Expected status rejected, got %s", rejected.Status)
	}

	missing, err := ModerateReview(database, mustUUID(t), models.ReviewApproved, "admin@cravekind.ca")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown review id")
	}
}

func TestUpsertTestimonialKeyedByNameAndTitle(t *testing.T) {
	database := setupTestDB(t)

	testimonial := &models.Testimonial{
		UserName:         "Emma Wilson",
		Title:            "Never looking back",
		Content:          "The recipes made the transition painless.",
		Rating:           5,
		TransitionPeriod: "3 months",
		IsFeatured:       true,
		AdminCreated:     true,
	}
	if err := UpsertTestimonial(database, testimonial); err != nil {
		t.Fatalf("UpsertTestimonial failed: %v", err)
	}
	if err := UpsertTestimonial(database, &models.Testimonial{
		UserName: "Emma Wilson", Title: "Never looking back",
		Content: "Updated story.", Rating: 5, IsFeatured: true, AdminCreated: true,
	}); err != nil {
		t.Fatalf("Second UpsertTestimonial failed: %v", err)
	}

	all, err := ListTestimonials(database, false)
	if err != nil {
		t.Fatalf("ListTestimonials failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 testimonial after repeated upsert, got %d", len(all))
	}
	if all[0].Content != "Updated story." {
		t.Errorf("Expected content replaced, got %q", all[0].Content)
	}

	featured, err := ListTestimonials(database, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(featured) != 1 {
		t.Errorf("Expected 1 featured testimonial, got %d", len(featured))
	}
}
