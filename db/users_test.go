// ABOUTME: Tests for user account storage
// ABOUTME: Covers goal validation before persistence, upserts, and token flows
package db

import (
	"testing"
	"time"

	"github.com/cravekind/backend/models"
)

func TestCreateUserValidatesDietaryGoals(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{
		Name:         "Sarah Green",
		Email:        "sarah@example.com",
		PasswordHash: "x",
		DietaryGoals: []string{"Reduce meat consumption"},
	}
	if err := CreateUser(database, user); err != nil {
		t.Fatalf("CreateUser with valid goals failed: %v", err)
	}

	bad := &models.User{
		Name:         "Bad Goals",
		Email:        "bad@example.com",
		PasswordHash: "x",
		DietaryGoals: []string{"Not a real goal"},
	}
	if err := CreateUser(database, bad); err == nil {
		t.Fatal("Expected validation error for unknown dietary goal")
	}

	// Validation failed before persistence; no row exists.
	if u, _ := GetUserByEmail(database, "bad@example.com"); u != nil {
		t.Error("Invalid user should not have been persisted")
	}
}

func TestUpsertUserKeyedByEmail(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "Admin", Email: "admin@cravekind.ca", PasswordHash: "h1", Role: models.RoleAdmin, IsVerified: true}
	if err := UpsertUser(database, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	again := &models.User{Name: "Admin Renamed", Email: "admin@cravekind.ca", PasswordHash: "h2", Role: models.RoleAdmin, IsVerified: true}
	if err := UpsertUser(database, again); err != nil {
		t.Fatalf("Second UpsertUser failed: %v", err)
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user after repeated upsert, got %d", count)
	}

	got, err := GetUserByEmail(database, "admin@cravekind.ca")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Admin Renamed" || got.PasswordHash != "h2" {
		t.Errorf("Upsert should replace fields, got %+v", got)
	}
	if got.ID != user.ID {
		t.Error("Upsert should keep the original id")
	}
}

func TestResetTokenFlow(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "U", Email: "u@example.com", PasswordHash: "h"}
	if err := CreateUser(database, user); err != nil {
		t.Fatal(err)
	}

	expires := time.Now().UTC().Add(time.Hour)
	if err := SetResetToken(database, user.ID, "tok123", expires); err != nil {
		t.Fatalf("SetResetToken failed: %v", err)
	}

	got, err := GetUserByResetToken(database, "tok123")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatal("Expected to find user by reset token")
	}
	if got.ResetTokenExpires == nil {
		t.Fatal("Expected reset token expiry to be stored")
	}

	if err := UpdatePassword(database, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	got, _ = GetUserByEmail(database, "u@example.com")
	if got.PasswordHash != "newhash" {
		t.Error("Expected password hash to change")
	}
	if got.ResetToken != "" {
		t.Error("Expected reset token cleared after password change")
	}

	if u, _ := GetUserByResetToken(database, "tok123"); u != nil {
		t.Error("Spent reset token should no longer resolve")
	}
}

func TestVerificationFlow(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "U", Email: "v@example.com", PasswordHash: "h", VerificationToken: "verify123"}
	if err := CreateUser(database, user); err != nil {
		t.Fatal(err)
	}

	got, err := GetUserByVerificationToken(database, "verify123")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("Expected to find user by verification token")
	}
	if got.IsVerified {
		t.Error("User should start unverified")
	}

	if err := MarkUserVerified(database, user.ID); err != nil {
		t.Fatalf("MarkUserVerified failed: %v", err)
	}
	got, _ = GetUserByEmail(database, "v@example.com")
	if !got.IsVerified {
		t.Error("Expected user verified")
	}
	if got.VerificationToken != "" {
		t.Error("Expected verification token cleared")
	}
}

func TestSetFavorites(t *testing.T) {
	database := setupTestDB(t)

	user := &models.User{Name: "U", Email: "f@example.com", PasswordHash: "h"}
	if err := CreateUser(database, user); err != nil {
		t.Fatal(err)
	}

	if err := SetFavorites(database, user.ID, []string{"alt-1", "alt-2"}); err != nil {
		t.Fatalf("SetFavorites failed: %v", err)
	}
	got, _ := GetUser(database, user.ID)
	if len(got.Favorites) != 2 {
		t.Errorf("Expected 2 favorites, got %v", got.Favorites)
	}
}
