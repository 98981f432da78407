// ABOUTME: Idempotent starter-data loader
// ABOUTME: Upserts the catalog, admin account, and testimonials by natural keys
package seed

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/cravekind/backend/auth"
	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

// All loads the starter dataset. Every write is an upsert keyed by a
// natural key, so running it on every boot is safe.
func All(database *sql.DB) error {
	log.Println("Starting database seeding...")

	if err := meatCravings(database); err != nil {
		return fmt.Errorf("failed to seed meat cravings: %w", err)
	}
	if err := alternatives(database); err != nil {
		return fmt.Errorf("failed to seed alternatives: %w", err)
	}
	if err := recipes(database); err != nil {
		return fmt.Errorf("failed to seed recipes: %w", err)
	}
	if err := adminUser(database); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := testimonials(database); err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func meatCravings(database *sql.DB) error {
	cravings := []models.MeatCraving{
		{
			MeatType:              "beef",
			Name:                  "Beef",
			Deficiency:            "Iron, B12, Protein",
			DeficiencyExplanation: "Beef cravings often indicate low iron levels, B12 deficiency, or protein needs. These nutrients are essential for energy production and red blood cell formation.",
			MeatSideEffects: []string{
				"Increased risk of heart disease",
				"Higher cholesterol levels",
				"Environmental impact",
				"Antibiotic resistance concerns",
			},
			RecommendedSupplements: []string{"Iron", "B12", "Plant-based protein"},
		},
		{
			MeatType:              "chicken",
			Name:                  "Chicken",
			Deficiency:            "Protein, B6, Niacin",
			DeficiencyExplanation: "Chicken cravings may indicate protein deficiency, low B6 levels, or niacin needs. These nutrients support muscle function and brain health.",
			MeatSideEffects: []string{
				"Potential antibiotic residues",
				"Salmonella risk",
				"Hormonal disruption",
				"Inflammatory response",
			},
			RecommendedSupplements: []string{"B6", "Niacin", "Plant-based protein"},
		},
		{
			MeatType:              "pork",
			Name:                  "Pork",
			Deficiency:            "Thiamine, B6, Zinc",
			DeficiencyExplanation: "Pork cravings often signal thiamine (B1) deficiency, low B6, or zinc needs. These nutrients are crucial for energy metabolism and immune function.",
			MeatSideEffects: []string{
				"High in saturated fat",
				"Nitrate concerns",
				"Increased inflammation",
				"Cardiovascular risks",
			},
			RecommendedSupplements: []string{"Thiamine", "B6", "Zinc"},
		},
		{
			MeatType:              "fish",
			Name:                  "Fish",
			Deficiency:            "Omega-3, Iodine, B12",
			DeficiencyExplanation: "Fish cravings typically indicate omega-3 fatty acid deficiency, low iodine levels, or B12 needs. These nutrients support brain health and thyroid function.",
			MeatSideEffects: []string{
				"Heavy metal contamination",
				"Microplastics",
				"Overfishing impact",
				"Potential toxins",
			},
			RecommendedSupplements: []string{"Omega-3 (algae-based)", "Iodine", "B12"},
		},
		{
			MeatType:              "lamb",
			Name:                  "Lamb",
			Deficiency:            "Iron, B12, Zinc",
			DeficiencyExplanation: "Lamb cravings often indicate iron deficiency, low B12, or zinc needs. These nutrients are essential for oxygen transport and immune function.",
			MeatSideEffects: []string{
				"High in saturated fat",
				"Cholesterol concerns",
				"Environmental impact",
				"Expensive production",
			},
			RecommendedSupplements: []string{"Iron", "B12", "Zinc"},
		},
	}

	for i := range cravings {
		if err := db.UpsertMeatCraving(database, &cravings[i]); err != nil {
			return err
		}
	}

	log.Println("Meat cravings seeded successfully")
	return nil
}

func alternatives(database *sql.DB) error {
	items := []models.Alternative{
		{
			Name:        "Beyond Beef",
			Brand:       "Beyond Meat",
			Type:        models.TypePlantBasedMeat,
			MeatType:    "beef",
			Description: "Plant-based ground meat alternative that looks, cooks, and tastes like beef",
			Nutrition: models.NutritionInfo{
				Protein: "20g", Iron: "4mg", Calories: "250", Fat: "18g",
				Fiber: "3g", B12: "2.4mcg", Sodium: "390mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"35% less saturated fat than beef",
				"No cholesterol",
				"Rich in plant-based protein",
				"Environmental sustainability",
			},
			Availability:    "Grocery stores, restaurants",
			PriceRange:      "$6-8 per package",
			PreparationTime: "10-15 minutes",
			DifficultyLevel: "Easy",
			Ingredients:     []string{"Pea protein", "Coconut oil", "Beet extract", "Natural flavors"},
			Allergens:       []string{"Soy"},
			Certifications:  []string{"Vegan", "Non-GMO"},
			Rating:          4.3,
			IsActive:        true,
		},
		{
			Name:        "Impossible Burger",
			Brand:       "Impossible Foods",
			Type:        models.TypePlantBasedMeat,
			MeatType:    "beef",
			Description: "Plant-based burger patty with heme iron that bleeds like real meat",
			Nutrition: models.NutritionInfo{
				Protein: "19g", Iron: "4mg", Calories: "240", Fat: "14g",
				Fiber: "3g", B12: "2.4mcg", Sodium: "370mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"Heme iron from plants",
				"No antibiotics",
				"Lower greenhouse gas emissions",
				"Tastes like beef",
			},
			Availability:    "Restaurants, grocery stores",
			PriceRange:      "$7-9 per package",
			PreparationTime: "8-10 minutes",
			DifficultyLevel: "Easy",
			Ingredients:     []string{"Soy protein", "Coconut oil", "Heme", "Potato protein"},
			Allergens:       []string{"Soy"},
			Certifications:  []string{"Vegan", "Kosher"},
			Rating:          4.4,
			IsActive:        true,
		},
		{
			Name:        "Lentil & Mushroom Mix",
			Brand:       "Whole Foods",
			Type:        models.TypeWholeFood,
			MeatType:    "beef",
			Description: "Combination of lentils and mushrooms for hearty, meaty texture",
			Nutrition: models.NutritionInfo{
				Protein: "18g", Iron: "6mg", Calories: "180", Fat: "1g",
				Fiber: "8g", B12: "0mcg", Sodium: "15mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"High in fiber",
				"Low in saturated fat",
				"Rich in folate",
				"Cost-effective",
			},
			Availability:    "All grocery stores",
			PriceRange:      "$2-4 per serving",
			PreparationTime: "25-30 minutes",
			DifficultyLevel: "Medium",
			Ingredients:     []string{"Green lentils", "Mushrooms", "Onions", "Herbs"},
			Allergens:       []string{},
			Certifications:  []string{"Vegan", "Organic"},
			Rating:          4.1,
			IsActive:        true,
		},
		{
			Name:        "Gardein Chicken Pieces",
			Brand:       "Gardein",
			Type:        models.TypePlantBasedMeat,
			MeatType:    "chicken",
			Description: "Crispy plant-based chicken pieces",
			Nutrition: models.NutritionInfo{
				Protein: "15g", Iron: "1mg", Calories: "180", Fat: "7g",
				Fiber: "5g", B12: "0mcg", Sodium: "480mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"Lower in saturated fat",
				"No cholesterol",
				"Good source of protein",
				"Quick cooking time",
			},
			Availability:    "Frozen section, grocery stores",
			PriceRange:      "$4-6 per package",
			PreparationTime: "12-15 minutes",
			DifficultyLevel: "Easy",
			Ingredients:     []string{"Soy protein", "Wheat gluten", "Vegetables", "Spices"},
			Allergens:       []string{"Soy", "Wheat"},
			Certifications:  []string{"Vegan", "Non-GMO"},
			Rating:          4.2,
			IsActive:        true,
		},
		{
			Name:        "Chickpea & Tofu Blend",
			Brand:       "Homemade",
			Type:        models.TypeWholeFood,
			MeatType:    "chicken",
			Description: "Combination of chickpeas and tofu for protein-rich alternative",
			Nutrition: models.NutritionInfo{
				Protein: "16g", Iron: "3mg", Calories: "200", Fat: "8g",
				Fiber: "6g", B12: "0mcg", Sodium: "10mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"High in fiber",
				"Rich in folate",
				"Versatile protein source",
				"Budget-friendly",
			},
			Availability:    "All grocery stores",
			PriceRange:      "$1-3 per serving",
			PreparationTime: "20-25 minutes",
			DifficultyLevel: "Medium",
			Ingredients:     []string{"Chickpeas", "Tofu", "Nutritional yeast", "Spices"},
			Allergens:       []string{"Soy"},
			Certifications:  []string{"Vegan", "Organic"},
			Rating:          4.0,
			IsActive:        true,
		},
		{
			Name:        "Good Catch Fish-Free Tuna",
			Brand:       "Good Catch",
			Type:        models.TypePlantBasedMeat,
			MeatType:    "fish",
			Description: "Plant-based tuna alternative with omega-3s from algae",
			Nutrition: models.NutritionInfo{
				Protein: "14g", Iron: "1mg", Calories: "90", Fat: "5g",
				Fiber: "2g", B12: "0mcg", Sodium: "350mg", Cholesterol: "0mg",
			},
			Benefits: []string{
				"No mercury",
				"Sustainable source",
				"Omega-3 from algae",
				"Ocean-friendly",
			},
			Availability:    "Canned goods, grocery stores",
			PriceRange:      "$3-5 per can",
			PreparationTime: "5 minutes",
			DifficultyLevel: "Easy",
			Ingredients:     []string{"Pea protein", "Algae oil", "Seaweed", "Natural flavors"},
			Allergens:       []string{},
			Certifications:  []string{"Vegan", "Sustainable"},
			Rating:          4.3,
			IsActive:        true,
		},
	}

	for i := range items {
		if err := db.UpsertAlternative(database, &items[i]); err != nil {
			return err
		}
	}

	log.Println("Alternatives seeded successfully")
	return nil
}

func recipes(database *sql.DB) error {
	// Recipes link to the alternatives seeded above when present.
	beyondBeef, err := db.GetAlternativeByName(database, "Beyond Beef", "Beyond Meat")
	if err != nil {
		return err
	}
	lentilMushroom, err := db.GetAlternativeByName(database, "Lentil & Mushroom Mix", "Whole Foods")
	if err != nil {
		return err
	}

	items := []models.Recipe{
		{
			Title:       "Hearty Lentil Bolognese",
			Description: "A rich and satisfying plant-based alternative to traditional meat sauce",
			MeatType:    "beef",
			CuisineType: models.CuisineItalian,
			PrepTime:    15,
			CookTime:    30,
			TotalTime:   45,
			Servings:    4,
			Difficulty:  models.DifficultyEasy,
			Ingredients: []string{
				"1 cup green lentils",
				"1 can crushed tomatoes",
				"1 onion, diced",
				"3 cloves garlic, minced",
				"2 carrots, diced",
				"2 celery stalks, diced",
				"Herbs: basil, oregano, thyme",
				"Olive oil",
				"Salt and pepper",
			},
			Instructions: []string{
				"Heat olive oil in a large pot over medium heat",
				"Sauté onion, garlic, carrots, and celery until softened",
				"Add lentils, tomatoes, and herbs",
				"Simmer for 30 minutes until lentils are tender",
				"Season with salt and pepper to taste",
				"Serve over pasta with fresh basil",
			},
			Tips: []string{
				"Use red lentils for faster cooking",
				"Add mushrooms for extra umami",
				"Make ahead - flavors improve overnight",
			},
			NutritionPerServing: map[string]string{
				"calories": "320", "protein": "18g", "fiber": "12g", "iron": "6mg",
			},
			Tags:       []string{"vegan", "high-protein", "family-friendly", "make-ahead"},
			Rating:     4.5,
			IsFeatured: true,
			CreatedBy:  "admin",
			IsActive:   true,
		},
		{
			Title:       "Beyond Beef Tacos",
			Description: "Quick and easy plant-based tacos with Beyond Beef",
			MeatType:    "beef",
			CuisineType: models.CuisineMexican,
			PrepTime:    10,
			CookTime:    10,
			TotalTime:   20,
			Servings:    4,
			Difficulty:  models.DifficultyEasy,
			Ingredients: []string{
				"1 package Beyond Beef",
				"1 packet taco seasoning",
				"8 corn tortillas",
				"1 avocado, sliced",
				"1 cup shredded lettuce",
				"2 tomatoes, diced",
				"1/4 cup red onion, diced",
				"Lime wedges",
				"Salsa",
			},
			Instructions: []string{
				"Cook Beyond Beef in a skillet over medium heat",
				"Add taco seasoning and cook according to package directions",
				"Warm tortillas in microwave or on griddle",
				"Fill tortillas with Beyond Beef mixture",
				"Top with avocado, lettuce, tomatoes, and onion",
				"Serve with lime wedges and salsa",
			},
			Tips: []string{
				"Add cumin for extra flavor",
				"Use hard or soft shells",
				"Make a taco bar for parties",
			},
			NutritionPerServing: map[string]string{
				"calories": "380", "protein": "20g", "fiber": "8g", "iron": "4mg",
			},
			Tags:       []string{"vegan", "quick-meal", "mexican", "family-friendly"},
			Rating:     4.3,
			IsFeatured: true,
			CreatedBy:  "admin",
			IsActive:   true,
		},
		{
			Title:       "Crispy Chickpea 'Chicken'",
			Description: "Crispy seasoned chickpea patties that taste like chicken",
			MeatType:    "chicken",
			CuisineType: models.CuisineAmerican,
			PrepTime:    20,
			CookTime:    15,
			TotalTime:   35,
			Servings:    4,
			Difficulty:  models.DifficultyMedium,
			Ingredients: []string{
				"2 cans chickpeas, drained and rinsed",
				"1/2 cup flour",
				"1/4 cup nutritional yeast",
				"1 tsp paprika",
				"1 tsp garlic powder",
				"1/2 tsp onion powder",
				"Salt and pepper",
				"Oil for frying",
			},
			Instructions: []string{
				"Mash chickpeas in a large bowl, leaving some texture",
				"Mix in flour, nutritional yeast, and all spices",
				"Form mixture into 8 patties",
				"Heat oil in a large skillet over medium-high heat",
				"Cook patties for 3-4 minutes per side until golden",
				"Serve immediately while crispy",
			},
			Tips: []string{
				"Pat chickpeas dry before mashing",
				"Don't overmix - texture is key",
				"Serve with vegan ranch dressing",
			},
			NutritionPerServing: map[string]string{
				"calories": "280", "protein": "16g", "fiber": "8g", "iron": "3mg",
			},
			Tags:      []string{"vegan", "high-protein", "crispy", "comfort-food"},
			Rating:    4.2,
			CreatedBy: "admin",
			IsActive:  true,
		},
	}
	if lentilMushroom != nil {
		items[0].AlternativeID = &lentilMushroom.ID
	}
	if beyondBeef != nil {
		items[1].AlternativeID = &beyondBeef.ID
	}

	for i := range items {
		if err := db.UpsertRecipe(database, &items[i]); err != nil {
			return err
		}
	}

	log.Println("Recipes seeded successfully")
	return nil
}

func adminUser(database *sql.DB) error {
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "CraveKind Admin",
		Email:        "admin@cravekind.ca",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsVerified:   true,
		Phone:        "+1234567890",
		Location:     "Toronto, Canada",
		AgeGroup:     "26-35",
		DietaryGoals: []string{"Environmental impact", "Animal welfare"},
	}
	if err := db.UpsertUser(database, admin); err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	return nil
}

func testimonials(database *sql.DB) error {
	items := []models.Testimonial{
		{
			UserName:         "Sarah Johnson",
			UserAvatar:       "https://images.unsplash.com/photo-1494790108755-2616b45f2a86?w=100&h=100&fit=crop&crop=face",
			Title:            "Life-changing experience!",
			Content:          "CraveKind helped me understand why I was craving meat and gave me amazing alternatives. I've been plant-based for 6 months now and feel incredible!",
			Rating:           5,
			TransitionPeriod: "6 months plant-based",
			AdminCreated:     true,
		},
		{
			UserName:         "Mike Chen",
			UserAvatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Title:            "Best decision ever",
			Content:          "The nutritional insights were eye-opening! I never realized my beef cravings were actually iron deficiency. The plant-based alternatives are delicious.",
			Rating:           5,
			TransitionPeriod: "1 year vegan",
			AdminCreated:     true,
		},
		{
			UserName:         "Emma Wilson",
			UserAvatar:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
			Title:            "Amazing recipes!",
			Content:          "The recipe suggestions made my transition so much easier. My family loves the Beyond Beef tacos - they can't tell the difference!",
			Rating:           5,
			TransitionPeriod: "3 months meat-free",
			AdminCreated:     true,
		},
	}

	for i := range items {
		if err := db.UpsertTestimonial(database, &items[i]); err != nil {
			return err
		}
	}

	log.Println("Testimonials seeded successfully")
	return nil
}
