// ABOUTME: Tests for deal storage
// ABOUTME: Covers value validation, stage moves, and close-date stamping
package db

import (
	"testing"

	"github.com/cravekind/backend/models"
)

func TestCreateDealValidation(t *testing.T) {
	database := setupTestDB(t)

	contact := &models.Contact{FirstName: "A", LastName: "B", Email: "a@example.com"}
	if err := CreateContact(database, contact); err != nil {
		t.Fatal(err)
	}

	bad := &models.Deal{ContactID: contact.ID, Title: "Freebie", Value: 0, CreatedBy: "admin"}
	if err := CreateDeal(database, bad); err == nil {
		t.Error("Expected error for non-positive deal value")
	}

	bad = &models.Deal{ContactID: contact.ID, Title: "Sure thing", Value: 100, Probability: 150, CreatedBy: "admin"}
	if err := CreateDeal(database, bad); err == nil {
		t.Error("Expected error for probability over 100")
	}

	good := &models.Deal{ContactID: contact.ID, Title: "Retail partnership", Value: 5000, Probability: 40, CreatedBy: "admin"}
	if err := CreateDeal(database, good); err != nil {
		t.Fatalf("CreateDeal failed: %v", err)
	}
	if good.Stage != models.StageProspect {
		t.Errorf("Expected default stage prospect, got %s", good.Stage)
	}
}

func TestUpdateDealStage(t *testing.T) {
	database := setupTestDB(t)

	contact := &models.Contact{FirstName: "A", LastName: "B", Email: "a@example.com"}
	if err := CreateContact(database, contact); err != nil {
		t.Fatal(err)
	}
	deal := &models.Deal{ContactID: contact.ID, Title: "Retail partnership", Value: 5000, Probability: 40, CreatedBy: "admin"}
	if err := CreateDeal(database, deal); err != nil {
		t.Fatal(err)
	}

	moved, err := UpdateDealStage(database, deal.ID, models.StageNegotiation, 70)
	if err != nil {
		t.Fatalf("UpdateDealStage failed: %v", err)
	}
	if moved.Stage != models.StageNegotiation || moved.Probability != 70 {
		t.Errorf("Stage move mismatch: %+v", moved)
	}
	if moved.ActualCloseDate != nil {
		t.Error("Open deal should have no actual close date")
	}

	won, err := UpdateDealStage(database, deal.ID, models.StageClosedWon, 100)
	if err != nil {
		t.Fatalf("UpdateDealStage failed: %v", err)
	}
	if won.ActualCloseDate == nil {
		t.Error("Closing a deal should stamp the actual close date")
	}

	missing, err := UpdateDealStage(database, mustUUID(t), models.StageClosedLost, 0)
	if err != nil {
		t.Fatalf("UpdateDealStage failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown deal id")
	}
}

func TestListDealsFilters(t *testing.T) {
	database := setupTestDB(t)

	contact := &models.Contact{FirstName: "A", LastName: "B", Email: "a@example.com"}
	if err := CreateContact(database, contact); err != nil {
		t.Fatal(err)
	}
	other := &models.Contact{FirstName: "C", LastName: "D", Email: "c@example.com"}
	if err := CreateContact(database, other); err != nil {
		t.Fatal(err)
	}

	deals := []models.Deal{
		{ContactID: contact.ID, Title: "One", Value: 100, CreatedBy: "admin"},
		{ContactID: contact.ID, Title: "Two", Value: 200, Stage: models.StageProposal, CreatedBy: "admin"},
		{ContactID: other.ID, Title: "Three", Value: 300, Stage: models.StageProposal, CreatedBy: "admin"},
	}
	for i := range deals {
		if err := CreateDeal(database, &deals[i]); err != nil {
			t.Fatal(err)
		}
	}

	byContact, err := ListDeals(database, &contact.ID, "", 0)
	if err != nil {
		t.Fatalf("ListDeals failed: %v", err)
	}
	if len(byContact) != 2 {
		t.Errorf("Expected 2 deals for contact, got %d", len(byContact))
	}

	byStage, err := ListDeals(database, nil, models.StageProposal, 0)
	if err != nil {
		t.Fatalf("ListDeals failed: %v", err)
	}
	if len(byStage) != 2 {
		t.Errorf("Expected 2 proposal deals, got %d", len(byStage))
	}

	all, err := ListDeals(database, nil, "", 0)
	if err != nil {
		t.Fatalf("ListDeals failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 deals total, got %d", len(all))
	}
}
