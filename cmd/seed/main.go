// Command seed wipes the database and loads a small demo fixture:
// alice with a stocked kitchen and one recipe, bob with oat milk and
// no recipes.
package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/wasteless-dev/wasteless/db"
	"github.com/wasteless-dev/wasteless/internal/auth"
	"github.com/wasteless-dev/wasteless/internal/config"
	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/store"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gormDB, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	wipe(gormDB)

	foodStore := store.NewFoodStore(gormDB)
	recipeStore := store.NewRecipeStore(gormDB)

	alice := createUser(gormDB, "alice", "alice@example.com", "alice123")
	bob := createUser(gormDB, "bob", "bob@example.com", "bob123")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	stock := []models.FoodEntry{
		{UserID: alice.ID, Name: "Tomato", Quantity: 4, Unit: "pcs", ExpirationDate: today.AddDate(0, 0, 3)},
		{UserID: alice.ID, Name: "Pasta", Quantity: 500, Unit: "g", ExpirationDate: today.AddDate(0, 0, 180)},
		{UserID: alice.ID, Name: "Cashew Nuts", Quantity: 200, Unit: "g", ExpirationDate: today.AddDate(0, 0, 7)},
		{UserID: alice.ID, Name: "Olive Oil", Quantity: 250, Unit: "ml", ExpirationDate: today.AddDate(0, 0, 365)},
		{UserID: bob.ID, Name: "Oat Milk", Quantity: 1, Unit: "l", ExpirationDate: today.AddDate(0, 0, 10)},
	}

	for i := range stock {
		if err := foodStore.Insert(&stock[i]); err != nil {
			log.Fatalf("Failed to seed food entry %q: %v", stock[i].Name, err)
		}
	}

	recipe := &models.Recipe{
		UserID:      alice.ID,
		Title:       "Pasta Pomodoro",
		Description: "Simple pasta with tomato sauce and a cashew topping.",
	}

	if err := recipeStore.CreateRecipe(recipe); err != nil {
		log.Fatalf("Failed to seed recipe: %v", err)
	}

	ingredients := []models.RecipeIngredient{
		{RecipeID: recipe.ID, Name: "Pasta", Quantity: 200, Unit: "g"},
		{RecipeID: recipe.ID, Name: "Tomato", Quantity: 3, Unit: "pcs"},
		{RecipeID: recipe.ID, Name: "Cashew Nuts", Quantity: 50, Unit: "g"},
		{RecipeID: recipe.ID, Name: "Olive Oil", Quantity: 2, Unit: "ml"},
	}

	if err := recipeStore.AddIngredients(ingredients); err != nil {
		log.Fatalf("Failed to seed ingredients: %v", err)
	}

	log.Println("Seed complete")
}

// wipe clears the tables in foreign-key order.
func wipe(gormDB *gorm.DB) {
	session := gormDB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()

	tables := []interface{}{
		&models.RecipeIngredient{},
		&models.Recipe{},
		&models.FoodEntry{},
		&models.User{},
	}

	for _, table := range tables {
		if err := session.Delete(table).Error; err != nil {
			log.Fatalf("Failed to wipe table %T: %v", table, err)
		}
	}
}

func createUser(gormDB *gorm.DB, username, email, password string) *models.User {
	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", username, err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: passwordHash}

	if err := store.NewUserStore(gormDB).Create(user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", username, err)
	}

	return user
}
