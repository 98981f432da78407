// ABOUTME: Tests for the alternatives catalog and meat cravings
// ABOUTME: Covers natural-key upserts, filters, and nutrition round-trips
package db

import (
	"testing"

	"github.com/cravekind/backend/models"
)

func TestUpsertAlternativeKeepsIdentity(t *testing.T) {
	database := setupTestDB(t)

	alt := &models.Alternative{
		Name:     "Beyond Beef",
		Brand:    "Beyond Meat",
		Type:     models.TypePlantBasedMeat,
		MeatType: "beef",
		Nutrition: models.NutritionInfo{
			Protein:  "20g",
			Iron:     "4mg",
			Calories: "230",
		},
		Benefits: []string{"High protein", "No cholesterol"},
		Rating:   4.5,
		IsActive: true,
	}
	if err := UpsertAlternative(database, alt); err != nil {
		t.Fatalf("UpsertAlternative failed: %v", err)
	}
	firstID := alt.ID
	firstCreated := alt.CreatedAt

	again := &models.Alternative{
		Name:     "Beyond Beef",
		Brand:    "Beyond Meat",
		Type:     models.TypePlantBasedMeat,
		MeatType: "beef",
		Rating:   4.7,
		IsActive: true,
	}
	if err := UpsertAlternative(database, again); err != nil {
		t.Fatalf("Second UpsertAlternative failed: %v", err)
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM alternatives`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 alternative after repeated upsert, got %d", count)
	}

	got, err := GetAlternative(database, firstID)
	if err != nil {
		t.Fatalf("GetAlternative failed: %v", err)
	}
	if got == nil {
		t.Fatal("Original id should still resolve after upsert")
	}
	if got.Rating != 4.7 {
		t.Errorf("Expected rating replaced to 4.7, got %f", got.Rating)
	}
	if !got.CreatedAt.Equal(firstCreated) {
		t.Error("Upsert should keep the original created_at")
	}
}

func TestGetAlternativeByName(t *testing.T) {
	database := setupTestDB(t)

	alt := &models.Alternative{Name: "Lentil & Mushroom Mix", Brand: "Homemade", Type: models.TypeWholeFood, MeatType: "beef", IsActive: true}
	if err := UpsertAlternative(database, alt); err != nil {
		t.Fatal(err)
	}
	// Same product name from a different brand must not collide.
	sameName := &models.Alternative{Name: "Lentil & Mushroom Mix", Brand: "Whole Foods", Type: models.TypeWholeFood, MeatType: "beef", IsActive: true}
	if err := UpsertAlternative(database, sameName); err != nil {
		t.Fatal(err)
	}

	got, err := GetAlternativeByName(database, "Lentil & Mushroom Mix", "Homemade")
	if err != nil {
		t.Fatalf("GetAlternativeByName failed: %v", err)
	}
	if got == nil || got.ID != alt.ID {
		t.Error("Expected to find alternative by name and brand")
	}

	other, err := GetAlternativeByName(database, "Lentil & Mushroom Mix", "Whole Foods")
	if err != nil {
		t.Fatal(err)
	}
	if other == nil || other.ID != sameName.ID {
		t.Error("Expected the other brand's product for the same name")
	}

	missing, err := GetAlternativeByName(database, "Nothing Burger", "Homemade")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown name")
	}
}

func TestListAlternativesFiltersAndOrder(t *testing.T) {
	database := setupTestDB(t)

	seed := []models.Alternative{
		{Name: "Beyond Beef", Brand: "Beyond Meat", Type: models.TypePlantBasedMeat, MeatType: "beef", Rating: 4.5, IsActive: true},
		{Name: "Impossible Burger", Brand: "Impossible Foods", Type: models.TypePlantBasedMeat, MeatType: "beef", Rating: 4.6, IsActive: true},
		{Name: "Gardein Chicken Pieces", Brand: "Gardein", Type: models.TypePlantBasedMeat, MeatType: "chicken", Rating: 4.2, IsActive: true},
		{Name: "Retired Product", Brand: "Oldco", Type: models.TypePlantBasedMeat, MeatType: "beef", Rating: 3.0, IsActive: false},
	}
	for i := range seed {
		if err := UpsertAlternative(database, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	beef, err := ListAlternatives(database, "beef", 0)
	if err != nil {
		t.Fatalf("ListAlternatives failed: %v", err)
	}
	if len(beef) != 2 {
		t.Fatalf("Expected 2 active beef alternatives, got %d", len(beef))
	}
	if beef[0].Name != "Impossible Burger" {
		t.Errorf("Expected best rated first, got %s", beef[0].Name)
	}

	all, err := ListAlternatives(database, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("Inactive products should be excluded, got %d", len(all))
	}
}

func TestMeatCravingUpsertAndLookup(t *testing.T) {
	database := setupTestDB(t)

	craving := &models.MeatCraving{
		MeatType:               "beef",
		Name:                   "Beef",
		Deficiency:             "Iron",
		DeficiencyExplanation:  "Craving beef often signals low iron.",
		MeatSideEffects:        []string{"High cholesterol"},
		RecommendedSupplements: []string{"Iron", "B12"},
	}
	if err := UpsertMeatCraving(database, craving); err != nil {
		t.Fatalf("UpsertMeatCraving failed: %v", err)
	}
	if err := UpsertMeatCraving(database, &models.MeatCraving{
		MeatType: "beef", Name: "Beef", Deficiency: "Iron and zinc",
	}); err != nil {
		t.Fatalf("Second UpsertMeatCraving failed: %v", err)
	}

	got, err := GetMeatCraving(database, "beef")
	if err != nil {
		t.Fatalf("GetMeatCraving failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected craving profile for beef")
	}
	if got.Deficiency != "Iron and zinc" {
		t.Errorf("Expected deficiency replaced, got %q", got.Deficiency)
	}
	if got.ID != craving.ID {
		t.Error("Upsert should keep the original id")
	}

	cravings, err := ListMeatCravings(database)
	if err != nil {
		t.Fatal(err)
	}
	if len(cravings) != 1 {
		t.Errorf("Expected 1 craving profile, got %d", len(cravings))
	}
}
